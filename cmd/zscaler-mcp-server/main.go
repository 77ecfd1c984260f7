package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/triage-ai/zscaler-mcp/internal/allowlist"
	"github.com/triage-ai/zscaler-mcp/internal/backend"
	"github.com/triage-ai/zscaler-mcp/internal/catalog"
	"github.com/triage-ai/zscaler-mcp/internal/config"
	"github.com/triage-ai/zscaler-mcp/internal/dispatch"
	"github.com/triage-ai/zscaler-mcp/internal/mcpserver"
	"github.com/triage-ai/zscaler-mcp/internal/registry"
	"github.com/triage-ai/zscaler-mcp/internal/storage"
)

var version = "dev"

func main() {
	// Flags default to empty so that an unset flag never shadows the
	// corresponding environment variable.
	cliServices := flag.String("services", "", "comma-separated Zscaler service IDs to expose (default all)")
	cliTools := flag.String("tools", "", "comma-separated tool names to expose (default all)")
	cliWrite := flag.Bool("enable-write-tools", false, "register write and delete tools, subject to the write allowlist")
	cliWriteTools := flag.String("write-tools", "", "comma-separated allowlist of write tool names, * wildcards allowed")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	// Logger. Stdout carries the MCP stream, so every log line goes to stderr.
	level := *logLevel
	if level == "" {
		level = envOrDefault("ZSCALER_MCP_LOG_LEVEL", "info")
	}
	logger := mustBuildLogger(level)
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Config: CLI flags and environment, resolved against the catalog.
	cat := catalog.New()
	known := config.KnownNames{
		Services: nameSet(cat.ServiceIDs()),
		Tools:    nameSet(cat.ToolNames()),
	}
	cfg, warnings := config.Resolve(config.RawInputs{
		CLIServices:     *cliServices,
		EnvServices:     os.Getenv("ZSCALER_MCP_SERVICES"),
		CLITools:        *cliTools,
		EnvTools:        os.Getenv("ZSCALER_MCP_TOOLS"),
		CLIWriteEnabled: *cliWrite,
		EnvWriteEnabled: os.Getenv("ZSCALER_MCP_WRITE_ENABLED"),
		CLIWriteTools:   *cliWriteTools,
		EnvWriteTools:   os.Getenv("ZSCALER_MCP_WRITE_TOOLS"),
	}, known)
	for _, w := range warnings {
		logger.Warn("configuration references an unknown name", zap.String(w.Field, w.Value))
	}

	logger.Info("starting zscaler mcp server",
		zap.String("version", version),
		zap.Bool("write_enabled", cfg.WriteEnabled),
	)

	matcher, patternWarnings := allowlist.Compile(cfg.WriteAllowlist)
	for _, w := range patternWarnings {
		logger.Warn("write allowlist pattern rejected",
			zap.String("pattern", w.Pattern),
			zap.String("reason", w.Reason),
		)
	}

	reg, err := registry.Build(cat, cfg, matcher, logger)
	if err != nil {
		logger.Fatal("catalog integrity check failed", zap.Error(err))
	}

	schemas, err := dispatch.CompileSchemas(reg.Tools())
	if err != nil {
		logger.Fatal("compiling tool schemas failed", zap.Error(err))
	}

	// Audit storage, ClickHouse when a DSN is set.
	writer := newEventWriter(logger)
	defer writer.Close()

	// Backend gateway client. Without credentials the tool surface stays
	// browsable and every call reports the missing configuration.
	var client backend.Client
	if apiURL := os.Getenv("ZSCALER_MCP_API_URL"); apiURL != "" {
		client = backend.NewAPIClient(backend.Config{
			BaseURL: apiURL,
			Token:   os.Getenv("ZSCALER_MCP_API_TOKEN"),
		}, logger)
		logger.Info("backend api client configured", zap.String("base_url", apiURL))
	} else {
		client = backend.Unconfigured{}
		logger.Warn("no ZSCALER_MCP_API_URL set, tool calls will fail until the backend is configured")
	}

	dispatcher := dispatch.New(reg, schemas, client, writer, logger)

	srv, err := mcpserver.New(reg, dispatcher, version, logger)
	if err != nil {
		logger.Fatal("building mcp server failed", zap.Error(err))
	}

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("mcp server failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

// newEventWriter selects the audit sink: ClickHouse when
// ZSCALER_MCP_CLICKHOUSE_DSN is set and reachable, stderr logging otherwise.
func newEventWriter(logger *zap.Logger) storage.EventWriter {
	dsn := os.Getenv("ZSCALER_MCP_CLICKHOUSE_DSN")
	if dsn == "" {
		logger.Info("no ZSCALER_MCP_CLICKHOUSE_DSN set, using log writer")
		return storage.NewLogWriter(logger)
	}
	writer, err := storage.NewClickHouseWriter(dsn, logger)
	if err != nil {
		logger.Warn("clickhouse connection failed, falling back to log writer", zap.Error(err))
		return storage.NewLogWriter(logger)
	}
	logger.Info("clickhouse writer connected")
	return writer
}

func mustBuildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
