// Package registry assembles the set of tools the server actually exposes
// from the static catalog, the resolved configuration, and the write
// allowlist. All gating decisions happen here, before any transport is up.
package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/triage-ai/zscaler-mcp/internal/allowlist"
	"github.com/triage-ai/zscaler-mcp/internal/catalog"
	"github.com/triage-ai/zscaler-mcp/internal/config"
)

// IntegrityError reports a duplicate tool name in the catalog. Duplicates
// mean two handlers would contend for one name, so startup must abort.
type IntegrityError struct {
	Name    string
	Service string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: tool name %q registered twice (second occurrence in service %q)", e.Name, e.Service)
}

// Summary counts the outcome of registration. Blocked counts
// write-classified tools that passed service and tool selection but were
// held back by the write gate.
type Summary struct {
	Read    int
	Write   int
	Blocked int
}

// Registry is the immutable post-gating tool set.
type Registry struct {
	byName  map[string]catalog.ToolSpec
	ordered []catalog.ToolSpec
	summary Summary
}

// Build walks the catalog and applies, in order: service selection, tool
// selection, then the write gate. Read-only tools that survive selection
// are always registered. Write and delete tools additionally require write
// mode plus an allowlist match. Name uniqueness is checked across the whole
// catalog, including tools that gating would have hidden.
func Build(cat *catalog.Catalog, cfg config.EffectiveConfig, matcher *allowlist.Matcher, logger *zap.Logger) (*Registry, error) {
	seen := make(map[string]struct{})
	for _, svc := range cat.Services() {
		for _, tool := range svc.Tools {
			if _, dup := seen[tool.Name]; dup {
				return nil, &IntegrityError{Name: tool.Name, Service: svc.ID}
			}
			seen[tool.Name] = struct{}{}
		}
	}

	if cfg.WriteEnabled && matcher.PatternCount() == 0 {
		logger.Warn("write tools are enabled but the write allowlist is empty; no write tool will be registered",
			zap.Bool("write_enabled", true),
			zap.Int("allowlist_patterns", 0))
	}

	reg := &Registry{byName: make(map[string]catalog.ToolSpec)}
	for _, svc := range cat.Services() {
		if !cfg.Services.Contains(svc.ID) {
			continue
		}
		for _, tool := range svc.Tools {
			if !cfg.Tools.Contains(tool.Name) {
				continue
			}
			if tool.Kind.Mutating() && !(cfg.WriteEnabled && matcher.Allowed(tool.Name)) {
				reg.summary.Blocked++
				continue
			}
			reg.byName[tool.Name] = tool
			reg.ordered = append(reg.ordered, tool)
			if tool.Kind.Mutating() {
				reg.summary.Write++
			} else {
				reg.summary.Read++
			}
		}
	}

	logger.Info("tool registry assembled",
		zap.Int("read_tools", reg.summary.Read),
		zap.Int("write_tools", reg.summary.Write),
		zap.Int("blocked_write_tools", reg.summary.Blocked),
		zap.Bool("write_enabled", cfg.WriteEnabled))
	return reg, nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (catalog.ToolSpec, bool) {
	spec, ok := r.byName[name]
	return spec, ok
}

// Tools returns the registered specs in catalog order.
func (r *Registry) Tools() []catalog.ToolSpec {
	out := make([]catalog.ToolSpec, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Summary returns the registration counts.
func (r *Registry) Summary() Summary {
	return r.summary
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.ordered)
}
