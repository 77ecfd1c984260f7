// Package backend forwards tool calls to the Zscaler OneAPI gateway. The
// dispatch layer hands it a routed call (service, resource, action); this
// package owns URL shaping, authentication headers, and response decoding.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/triage-ai/zscaler-mcp/internal/catalog"
)

// Call is one routed backend operation.
type Call struct {
	Service   string
	Resource  string
	Action    string
	ReadOnly  bool
	Arguments map[string]any
}

// Client executes routed calls against the backend.
type Client interface {
	Do(ctx context.Context, call Call) (any, error)
}

// ErrNotConfigured marks calls made before backend credentials were set.
var ErrNotConfigured = errors.New("backend api is not configured")

// Unconfigured is the Client used when no API URL is present. Every call
// fails with ErrNotConfigured so the tool surface stays explorable without
// credentials.
type Unconfigured struct{}

func (Unconfigured) Do(ctx context.Context, call Call) (any, error) {
	return nil, fmt.Errorf("%w: set ZSCALER_MCP_API_URL and ZSCALER_MCP_API_TOKEN", ErrNotConfigured)
}

// APIError carries a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Config holds the connection settings of the API client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// APIClient is the HTTP implementation of Client.
type APIClient struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

const defaultTimeout = 30 * time.Second

// NewAPIClient creates an APIClient for the given gateway.
func NewAPIClient(cfg Config, logger *zap.Logger) *APIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &APIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Do routes the call onto the gateway. CRUD actions map to conventional
// REST shapes; anything else becomes a sub-path under the resource, GET for
// read-only calls and POST for mutating ones.
func (c *APIClient) Do(ctx context.Context, call Call) (any, error) {
	method, path, err := c.route(call)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, call)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("reading backend response: %w", err)
	}

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{"ok": true}, nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		// Some endpoints (device CSV export) return non-JSON payloads.
		return map[string]any{"raw": string(body)}, nil
	}
	return decoded, nil
}

func (c *APIClient) route(call Call) (method, path string, err error) {
	base := fmt.Sprintf("/%s/%s", call.Service, call.Resource)
	switch call.Action {
	case catalog.ActionList:
		return http.MethodGet, base, nil
	case catalog.ActionGet:
		id, err := callID(call)
		if err != nil {
			return "", "", err
		}
		return http.MethodGet, base + "/" + url.PathEscape(id), nil
	case catalog.ActionCreate:
		return http.MethodPost, base, nil
	case catalog.ActionUpdate:
		id, err := callID(call)
		if err != nil {
			return "", "", err
		}
		return http.MethodPut, base + "/" + url.PathEscape(id), nil
	case catalog.ActionDelete:
		id, err := callID(call)
		if err != nil {
			return "", "", err
		}
		return http.MethodDelete, base + "/" + url.PathEscape(id), nil
	default:
		if call.ReadOnly {
			return http.MethodGet, base + "/" + call.Action, nil
		}
		return http.MethodPost, base + "/" + call.Action, nil
	}
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, call Call) (*http.Request, error) {
	var body io.Reader
	target := c.baseURL + path

	switch method {
	case http.MethodGet, http.MethodDelete:
		if query := queryArgs(call); query != "" {
			target += "?" + query
		}
	default:
		payload := bodyArgs(call)
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// callID pulls the path identifier out of the arguments. Schema validation
// upstream guarantees it for CRUD tools; the check here guards direct use.
func callID(call Call) (string, error) {
	id, ok := call.Arguments["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("call to %s/%s requires a string id argument", call.Resource, call.Action)
	}
	return id, nil
}

// queryArgs flattens arguments into a query string for GET and DELETE
// calls. The id travels in the path, not the query.
func queryArgs(call Call) string {
	values := url.Values{}
	for k, v := range call.Arguments {
		if k == "id" {
			continue
		}
		switch val := v.(type) {
		case []any:
			for _, item := range val {
				values.Add(k, fmt.Sprintf("%v", item))
			}
		default:
			values.Set(k, fmt.Sprintf("%v", v))
		}
	}
	return values.Encode()
}

// bodyArgs is the JSON body for mutating calls. The id travels in the path.
func bodyArgs(call Call) map[string]any {
	payload := make(map[string]any, len(call.Arguments))
	for k, v := range call.Arguments {
		if k == "id" {
			continue
		}
		payload[k] = v
	}
	return payload
}

func errorMessage(body []byte) string {
	var decoded struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		if decoded.Message != "" {
			return decoded.Message
		}
		if decoded.Error != "" {
			return decoded.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	// Cap by rune so the cut never splits a multi-byte character.
	if runes := []rune(msg); len(runes) > 200 {
		msg = string(runes[:200])
	}
	if msg == "" {
		msg = "no error detail"
	}
	return msg
}
