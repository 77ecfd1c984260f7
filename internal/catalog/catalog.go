// Package catalog defines the static tool surface of the server: every
// Zscaler service module, its tools, their argument schemas, and their
// mutation classification. The catalog is compiled into the binary and
// assembled once at startup.
package catalog

import (
	"fmt"
	"sort"
)

// Kind classifies what a tool does to backend state.
type Kind int

const (
	// ReadOnly tools never mutate backend configuration.
	ReadOnly Kind = iota
	// Write tools create or update backend configuration.
	Write
	// Delete tools remove backend configuration or enrolled devices.
	Delete
)

// String returns the form used in logs and audit events.
func (k Kind) String() string {
	switch k {
	case ReadOnly:
		return "read"
	case Write:
		return "write"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mutating reports whether the kind is write-classified. Both Write and
// Delete tools sit behind the write-enablement gate.
func (k Kind) Mutating() bool {
	return k == Write || k == Delete
}

// Annotations are the MCP behavior hints advertised for a tool.
type Annotations struct {
	ReadOnlyHint    bool
	DestructiveHint bool
}

// Canonical CRUD actions. Tools outside the CRUD set carry free-form
// actions such as "activate" or "download".
const (
	ActionList   = "list"
	ActionGet    = "get"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ToolSpec describes a single callable tool. Specs are immutable data;
// execution is wired up elsewhere.
type ToolSpec struct {
	Name        string
	Service     string
	Resource    string
	Action      string
	Kind        Kind
	Description string
	InputSchema map[string]any
}

// Annotations derives the MCP hints from the tool's kind.
func (t ToolSpec) Annotations() Annotations {
	return Annotations{
		ReadOnlyHint:    t.Kind == ReadOnly,
		DestructiveHint: t.Kind == Delete,
	}
}

// ServiceModule groups the tools of one Zscaler product.
type ServiceModule struct {
	ID    string
	Title string
	Tools []ToolSpec
}

// Catalog is the full static tool surface, assembled once and never
// mutated afterwards.
type Catalog struct {
	services []ServiceModule
}

// New returns the complete catalog covering every supported service module.
func New() *Catalog {
	return FromModules(
		zpaModule(),
		ziaModule(),
		zdxModule(),
		zccModule(),
		ztwModule(),
		zidentityModule(),
	)
}

// FromModules assembles a catalog from explicit service modules.
func FromModules(modules ...ServiceModule) *Catalog {
	return &Catalog{services: modules}
}

// Services returns the service modules in catalog order.
func (c *Catalog) Services() []ServiceModule {
	out := make([]ServiceModule, len(c.services))
	copy(out, c.services)
	return out
}

// Tools returns every tool across all service modules, in catalog order.
func (c *Catalog) Tools() []ToolSpec {
	var out []ToolSpec
	for _, svc := range c.services {
		out = append(out, svc.Tools...)
	}
	return out
}

// ServiceIDs returns the known service identifiers in catalog order.
func (c *Catalog) ServiceIDs() []string {
	out := make([]string, 0, len(c.services))
	for _, svc := range c.services {
		out = append(out, svc.ID)
	}
	return out
}

// ToolNames returns every tool name, sorted.
func (c *Catalog) ToolNames() []string {
	tools := c.Tools()
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.Name)
	}
	sort.Strings(out)
	return out
}
