// Package mcpserver exposes the registered tool surface over the Model
// Context Protocol. It is a thin bridge: tool metadata comes from the
// registry, execution goes through the dispatcher, and this package only
// translates between the two and the SDK.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/triage-ai/zscaler-mcp/internal/catalog"
	"github.com/triage-ai/zscaler-mcp/internal/dispatch"
	"github.com/triage-ai/zscaler-mcp/internal/registry"
)

const serverName = "zscaler-mcp"

// Server wraps the SDK server with the wiring of this project.
type Server struct {
	srv    *mcp.Server
	logger *zap.Logger
}

// New registers every tool in the registry on a fresh MCP server. Handlers
// close over their spec; all of them funnel into the dispatcher.
func New(reg *registry.Registry, d *dispatch.Dispatcher, version string, logger *zap.Logger) (*Server, error) {
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	for _, spec := range reg.Tools() {
		tool, err := toMCPTool(spec)
		if err != nil {
			return nil, fmt.Errorf("building MCP tool %s: %w", spec.Name, err)
		}
		srv.AddTool(tool, callHandler(d, spec.Name))
	}

	logger.Info("mcp server ready",
		zap.String("name", serverName),
		zap.String("version", version),
		zap.Int("tools", reg.Len()))
	return &Server{srv: srv, logger: logger}, nil
}

// Run serves the MCP session over stdio until ctx is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving mcp over stdio")
	return s.srv.Run(ctx, &mcp.StdioTransport{})
}

func callHandler(d *dispatch.Dispatcher, toolName string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return errorResult(dispatch.ErrorInvalidArguments, fmt.Sprintf("arguments must be a JSON object: %v", err)), nil
		}
		resp := d.Call(ctx, dispatch.Request{ToolName: toolName, Arguments: args})
		return toCallToolResult(resp), nil
	}
}

func toMCPTool(spec catalog.ToolSpec) (*mcp.Tool, error) {
	schema, err := toSchema(spec.InputSchema)
	if err != nil {
		return nil, err
	}
	ann := spec.Annotations()
	destructive := ann.DestructiveHint
	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    ann.ReadOnlyHint,
			DestructiveHint: &destructive,
		},
	}, nil
}

func toSchema(doc map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// decodeArguments tolerates the forms the SDK hands a raw handler: raw
// JSON, an already-decoded map, or nothing.
func decodeArguments(v any) (map[string]any, error) {
	switch args := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return args, nil
	case json.RawMessage:
		if len(args) == 0 {
			return map[string]any{}, nil
		}
		out := map[string]any{}
		if err := json.Unmarshal(args, &out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func toCallToolResult(resp dispatch.Response) *mcp.CallToolResult {
	switch resp.Status {
	case dispatch.StatusExecuted:
		structured := map[string]any{
			"status":     string(resp.Status),
			"request_id": resp.RequestID,
			"result":     resp.Result,
		}
		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: resultText(resp.Result)}},
			StructuredContent: structured,
		}

	case dispatch.StatusConfirmationRequired:
		structured := map[string]any{
			"status":     string(resp.Status),
			"request_id": resp.RequestID,
			"tool":       resp.Confirmation.Tool,
			"service":    resp.Confirmation.Service,
			"arguments":  resp.Confirmation.Arguments,
		}
		return &mcp.CallToolResult{
			Content:           []mcp.Content{&mcp.TextContent{Text: resp.Confirmation.Message}},
			StructuredContent: structured,
		}

	default:
		return errorResult(resp.ErrorKind, resp.Message)
	}
}

func errorResult(kind dispatch.ErrorKind, message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
		StructuredContent: map[string]any{
			"status":     string(dispatch.StatusError),
			"error_kind": string(kind),
			"message":    message,
		},
	}
}

func resultText(result any) string {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(raw)
}
