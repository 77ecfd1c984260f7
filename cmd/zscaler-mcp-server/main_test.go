package main

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/triage-ai/zscaler-mcp/internal/storage"
)

// hookedLogger records every log message so tests can tell which startup
// path ran.
func hookedLogger(messages *[]string) *zap.Logger {
	logger, _ := zap.NewDevelopment(zap.Hooks(func(e zapcore.Entry) error {
		*messages = append(*messages, e.Message)
		return nil
	}))
	return logger
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("ZSCALER_MCP_LOG_LEVEL", "debug")
	if got := envOrDefault("ZSCALER_MCP_LOG_LEVEL", "info"); got != "debug" {
		t.Fatalf("envOrDefault returned %q, want %q", got, "debug")
	}
	if got := envOrDefault("ZSCALER_MCP_ABSENT", "info"); got != "info" {
		t.Fatalf("envOrDefault returned %q, want %q", got, "info")
	}
}

func TestAuditWriterReadsPrefixedDSNOnly(t *testing.T) {
	// Every variable this binary reads carries the ZSCALER_MCP_ prefix; a
	// bare CLICKHOUSE_DSN is not part of the contract and must be ignored.
	t.Setenv("ZSCALER_MCP_CLICKHOUSE_DSN", "")
	t.Setenv("CLICKHOUSE_DSN", "clickhouse://127.0.0.1:9000/zscaler_mcp")

	var messages []string
	writer := newEventWriter(hookedLogger(&messages))
	defer writer.Close()

	if _, ok := writer.(*storage.LogWriter); !ok {
		t.Fatalf("expected *storage.LogWriter, got %T", writer)
	}
	if !slices.Contains(messages, "no ZSCALER_MCP_CLICKHOUSE_DSN set, using log writer") {
		t.Fatalf("expected the no-DSN path, logged: %v", messages)
	}
}

func TestAuditWriterFallsBackWhenClickHouseUnavailable(t *testing.T) {
	t.Setenv("ZSCALER_MCP_CLICKHOUSE_DSN", "://not-a-dsn")

	var messages []string
	writer := newEventWriter(hookedLogger(&messages))
	defer writer.Close()

	if _, ok := writer.(*storage.LogWriter); !ok {
		t.Fatalf("expected fallback to *storage.LogWriter, got %T", writer)
	}
	if !slices.Contains(messages, "clickhouse connection failed, falling back to log writer") {
		t.Fatalf("expected the fallback path, logged: %v", messages)
	}
}
