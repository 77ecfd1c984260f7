// Package dispatch executes tool calls against the registry: lookup,
// argument validation, the delete confirmation gate, then the backend
// handler. Every call produces exactly one three-way outcome and one audit
// event.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/triage-ai/zscaler-mcp/internal/backend"
	"github.com/triage-ai/zscaler-mcp/internal/catalog"
	"github.com/triage-ai/zscaler-mcp/internal/registry"
	"github.com/triage-ai/zscaler-mcp/internal/storage"
)

// Status is the three-way outcome of a tool call.
type Status string

const (
	StatusExecuted             Status = "executed"
	StatusConfirmationRequired Status = "confirmation_required"
	StatusError                Status = "error"
)

// ErrorKind refines StatusError.
type ErrorKind string

const (
	ErrorNotFound         ErrorKind = "not_found"
	ErrorInvalidArguments ErrorKind = "invalid_arguments"
	ErrorHandler          ErrorKind = "handler_error"
)

// Request is a tool call as received from the transport.
type Request struct {
	ToolName  string
	Arguments map[string]any
}

// ConfirmationDetails tells the caller how to complete a gated delete.
type ConfirmationDetails struct {
	Tool      string
	Service   string
	Message   string
	Arguments map[string]any
}

// Response is the outcome of one tool call. Exactly one of Result,
// Confirmation, or the error fields is meaningful, keyed by Status.
type Response struct {
	Status       Status
	RequestID    string
	Result       any
	Confirmation *ConfirmationDetails
	ErrorKind    ErrorKind
	Message      string
}

// Dispatcher runs tool calls. It holds no per-call state; a single
// Dispatcher serves concurrent sessions.
type Dispatcher struct {
	registry *registry.Registry
	schemas  *SchemaSet
	backend  backend.Client
	events   storage.EventWriter
	logger   *zap.Logger
}

// New wires a Dispatcher.
func New(reg *registry.Registry, schemas *SchemaSet, client backend.Client, events storage.EventWriter, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		schemas:  schemas,
		backend:  client,
		events:   events,
		logger:   logger,
	}
}

// Call executes one tool call end to end. Calls to unregistered names fail
// with not_found; this is the only surface a blocked write tool can present.
func (d *Dispatcher) Call(ctx context.Context, req Request) Response {
	start := time.Now()
	requestID := uuid.New().String()

	spec, ok := d.registry.Lookup(req.ToolName)
	if !ok {
		resp := Response{
			Status:    StatusError,
			RequestID: requestID,
			ErrorKind: ErrorNotFound,
			Message:   fmt.Sprintf("tool %q is not registered", req.ToolName),
		}
		d.finish(catalog.ToolSpec{Name: req.ToolName}, resp, start)
		return resp
	}

	if err := d.schemas.Validate(spec.Name, req.Arguments); err != nil {
		resp := Response{
			Status:    StatusError,
			RequestID: requestID,
			ErrorKind: ErrorInvalidArguments,
			Message:   fmt.Sprintf("invalid arguments for %s: %v", spec.Name, err),
		}
		d.finish(spec, resp, start)
		return resp
	}

	if needsConfirmation(spec, req.Arguments) {
		resp := Response{
			Status:       StatusConfirmationRequired,
			RequestID:    requestID,
			Confirmation: confirmationDetails(spec, req.Arguments),
		}
		d.finish(spec, resp, start)
		return resp
	}

	result, err := d.backend.Do(ctx, backend.Call{
		Service:   spec.Service,
		Resource:  spec.Resource,
		Action:    spec.Action,
		ReadOnly:  spec.Kind == catalog.ReadOnly,
		Arguments: stripConfirm(req.Arguments),
	})
	if err != nil {
		resp := Response{
			Status:    StatusError,
			RequestID: requestID,
			ErrorKind: ErrorHandler,
			Message:   fmt.Sprintf("tool %s failed: %v", spec.Name, err),
		}
		d.finish(spec, resp, start)
		return resp
	}

	resp := Response{
		Status:    StatusExecuted,
		RequestID: requestID,
		Result:    result,
	}
	d.finish(spec, resp, start)
	return resp
}

// finish logs the outcome and emits the audit event. Event writes are
// fire-and-forget; a slow sink never delays the response.
func (d *Dispatcher) finish(spec catalog.ToolSpec, resp Response, start time.Time) {
	duration := time.Since(start)

	fields := []zap.Field{
		zap.String("request_id", resp.RequestID),
		zap.String("tool", spec.Name),
		zap.String("status", string(resp.Status)),
		zap.Duration("duration", duration),
	}
	switch resp.Status {
	case StatusError:
		fields = append(fields, zap.String("error_kind", string(resp.ErrorKind)), zap.String("message", resp.Message))
		d.logger.Warn("tool call failed", fields...)
	default:
		d.logger.Info("tool call", fields...)
	}

	// Unregistered names carry no kind; spec is zero except for the name.
	kind := ""
	if spec.Service != "" {
		kind = spec.Kind.String()
	}
	d.events.Write(&storage.ToolCallEvent{
		RequestID:  resp.RequestID,
		Timestamp:  start,
		ToolName:   spec.Name,
		Service:    spec.Service,
		Kind:       kind,
		Status:     string(resp.Status),
		ErrorKind:  string(resp.ErrorKind),
		DurationMs: float32(duration.Seconds() * 1000),
		Transport:  "stdio",
	})
}
