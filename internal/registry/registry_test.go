package registry

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/triage-ai/zscaler-mcp/internal/allowlist"
	"github.com/triage-ai/zscaler-mcp/internal/catalog"
	"github.com/triage-ai/zscaler-mcp/internal/config"
)

func buildWith(t *testing.T, cat *catalog.Catalog, raw config.RawInputs) *Registry {
	t.Helper()
	cfg, _ := config.Resolve(raw, config.KnownNames{})
	matcher, _ := allowlist.Compile(cfg.WriteAllowlist)
	logger, _ := zap.NewDevelopment()
	reg, err := Build(cat, cfg, matcher, logger)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return reg
}

// miniCatalog is a four-tool catalog with one tool per gating class:
// read, create, update, delete.
func miniCatalog() *catalog.Catalog {
	return catalog.FromModules(catalog.ServiceModule{
		ID:    "zpa",
		Title: "Zscaler Private Access",
		Tools: []catalog.ToolSpec{
			{Name: "zpa_list_application_segments", Service: "zpa", Resource: "application_segments", Action: "list", Kind: catalog.ReadOnly, Description: "List.", InputSchema: map[string]any{"type": "object"}},
			{Name: "zpa_create_application_segment", Service: "zpa", Resource: "application_segments", Action: "create", Kind: catalog.Write, Description: "Create.", InputSchema: map[string]any{"type": "object"}},
			{Name: "zpa_update_application_segment", Service: "zpa", Resource: "application_segments", Action: "update", Kind: catalog.Write, Description: "Update.", InputSchema: map[string]any{"type": "object"}},
			{Name: "zpa_delete_application_segment", Service: "zpa", Resource: "application_segments", Action: "delete", Kind: catalog.Delete, Description: "Delete.", InputSchema: map[string]any{"type": "object"}},
		},
	})
}

func TestReadToolsRegisterWithoutWriteMode(t *testing.T) {
	reg := buildWith(t, miniCatalog(), config.RawInputs{})

	if _, ok := reg.Lookup("zpa_list_application_segments"); !ok {
		t.Fatal("read-only tool must register without write mode")
	}
	for _, name := range []string{"zpa_create_application_segment", "zpa_update_application_segment", "zpa_delete_application_segment"} {
		if _, ok := reg.Lookup(name); ok {
			t.Fatalf("%s must not register while write mode is off", name)
		}
	}
	s := reg.Summary()
	if s.Read != 1 || s.Write != 0 || s.Blocked != 3 {
		t.Fatalf("expected summary 1/0/3, got %+v", s)
	}
}

func TestWriteModeAloneIsNotEnough(t *testing.T) {
	// Write mode on, allowlist empty: the safety denial keeps every
	// write-classified tool out.
	reg := buildWith(t, miniCatalog(), config.RawInputs{CLIWriteEnabled: true})

	if reg.Summary().Write != 0 {
		t.Fatalf("expected zero write tools, got %d", reg.Summary().Write)
	}
	if reg.Summary().Blocked != 3 {
		t.Fatalf("expected 3 blocked tools, got %d", reg.Summary().Blocked)
	}
}

func TestAllowlistAloneIsNotEnough(t *testing.T) {
	// Allowlist wide open but write mode off: still zero write tools.
	reg := buildWith(t, miniCatalog(), config.RawInputs{CLIWriteTools: "*"})

	if reg.Summary().Write != 0 {
		t.Fatalf("expected zero write tools, got %d", reg.Summary().Write)
	}
	if _, ok := reg.Lookup("zpa_create_application_segment"); ok {
		t.Fatal("write tool must not register while write mode is off")
	}
}

func TestAllowlistSelectsExactWriteTools(t *testing.T) {
	reg := buildWith(t, miniCatalog(), config.RawInputs{
		CLIWriteEnabled: true,
		CLIWriteTools:   "zpa_create_*,zpa_delete_*",
	})

	s := reg.Summary()
	if s.Read != 1 || s.Write != 2 || s.Blocked != 1 {
		t.Fatalf("expected summary 1/2/1, got %+v", s)
	}
	if _, ok := reg.Lookup("zpa_create_application_segment"); !ok {
		t.Fatal("allowlisted create tool must register")
	}
	if _, ok := reg.Lookup("zpa_delete_application_segment"); !ok {
		t.Fatal("allowlisted delete tool must register")
	}
	if _, ok := reg.Lookup("zpa_update_application_segment"); ok {
		t.Fatal("update tool is outside the allowlist and must stay blocked")
	}
}

// Patterns anchor on whole tool names, so a zpa_ prefix pattern can never
// admit a write tool from another service.
func TestWriteAllowlistAcrossServices(t *testing.T) {
	cat := catalog.FromModules(
		catalog.ServiceModule{
			ID:    "zpa",
			Title: "Zscaler Private Access",
			Tools: []catalog.ToolSpec{
				{Name: "zpa_create_application_segment", Service: "zpa", Resource: "application_segments", Action: "create", Kind: catalog.Write, Description: "Create.", InputSchema: map[string]any{"type": "object"}},
				{Name: "zpa_update_application_segment", Service: "zpa", Resource: "application_segments", Action: "update", Kind: catalog.Write, Description: "Update.", InputSchema: map[string]any{"type": "object"}},
				{Name: "zpa_delete_application_segment", Service: "zpa", Resource: "application_segments", Action: "delete", Kind: catalog.Delete, Description: "Delete.", InputSchema: map[string]any{"type": "object"}},
			},
		},
		catalog.ServiceModule{
			ID:    "zia",
			Title: "Zscaler Internet Access",
			Tools: []catalog.ToolSpec{
				{Name: "zia_create_rule_label", Service: "zia", Resource: "rule_labels", Action: "create", Kind: catalog.Write, Description: "Create.", InputSchema: map[string]any{"type": "object"}},
			},
		},
	)

	reg := buildWith(t, cat, config.RawInputs{
		CLIWriteEnabled: true,
		CLIWriteTools:   "zpa_create_*,zpa_delete_*",
	})

	for _, name := range []string{"zpa_create_application_segment", "zpa_delete_application_segment"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("%s matches a pattern and must register", name)
		}
	}
	for _, name := range []string{"zpa_update_application_segment", "zia_create_rule_label"} {
		if _, ok := reg.Lookup(name); ok {
			t.Fatalf("%s matches no pattern and must stay blocked", name)
		}
	}
	s := reg.Summary()
	if s.Read != 0 || s.Write != 2 || s.Blocked != 2 {
		t.Fatalf("expected summary 0/2/2, got %+v", s)
	}
}

func TestServiceSelectionFiltersModules(t *testing.T) {
	reg := buildWith(t, catalog.New(), config.RawInputs{CLIServices: "zia"})

	for _, tool := range reg.Tools() {
		if tool.Service != "zia" {
			t.Fatalf("tool %q from service %q registered despite zia-only selection", tool.Name, tool.Service)
		}
	}
	if reg.Summary().Read != 38 {
		t.Fatalf("expected 38 zia read tools, got %d", reg.Summary().Read)
	}
}

func TestToolSelectionIsExact(t *testing.T) {
	reg := buildWith(t, catalog.New(), config.RawInputs{
		CLITools: "zpa_list_application_segments,zdx_list_devices",
	})

	if reg.Len() != 2 {
		t.Fatalf("expected exactly 2 registered tools, got %d", reg.Len())
	}
	if _, ok := reg.Lookup("zpa_list_application_segments"); !ok {
		t.Fatal("selected tool missing from registry")
	}
	if _, ok := reg.Lookup("zpa_list_segment_groups"); ok {
		t.Fatal("selection must not widen to sibling tools")
	}
}

// Full-catalog safety property: write mode with an empty allowlist exposes
// zero of the 93 write-classified tools.
func TestFullCatalogEmptyAllowlistExposesNoWriteTools(t *testing.T) {
	reg := buildWith(t, catalog.New(), config.RawInputs{CLIWriteEnabled: true})

	s := reg.Summary()
	if s.Write != 0 {
		t.Fatalf("expected zero write tools, got %d", s.Write)
	}
	if s.Blocked != 93 {
		t.Fatalf("expected 93 blocked write-classified tools, got %d", s.Blocked)
	}
	if s.Read != 103 {
		t.Fatalf("expected 103 read tools, got %d", s.Read)
	}
}

func TestFullCatalogStarAllowlistExposesAllWriteTools(t *testing.T) {
	reg := buildWith(t, catalog.New(), config.RawInputs{
		CLIWriteEnabled: true,
		CLIWriteTools:   "*",
	})

	s := reg.Summary()
	if s.Write != 93 || s.Blocked != 0 {
		t.Fatalf("expected 93 write tools and 0 blocked, got %+v", s)
	}
	if reg.Len() != 196 {
		t.Fatalf("expected the full 196-tool surface, got %d", reg.Len())
	}
}

func TestDuplicateToolNameAbortsBuild(t *testing.T) {
	dup := catalog.FromModules(
		catalog.ServiceModule{
			ID: "zpa",
			Tools: []catalog.ToolSpec{
				{Name: "zpa_list_idps", Service: "zpa", Resource: "idps", Action: "list", Kind: catalog.ReadOnly},
			},
		},
		catalog.ServiceModule{
			ID: "zia",
			Tools: []catalog.ToolSpec{
				{Name: "zpa_list_idps", Service: "zia", Resource: "idps", Action: "list", Kind: catalog.ReadOnly},
			},
		},
	)

	cfg, _ := config.Resolve(config.RawInputs{}, config.KnownNames{})
	matcher, _ := allowlist.Compile(nil)
	logger, _ := zap.NewDevelopment()
	_, err := Build(dup, cfg, matcher, logger)
	if err == nil {
		t.Fatal("expected Build to fail on a duplicate tool name")
	}
	var integrity *IntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected IntegrityError, got %T: %v", err, err)
	}
	if integrity.Name != "zpa_list_idps" {
		t.Fatalf("expected the duplicate name in the error, got %q", integrity.Name)
	}
}

// A duplicate must abort even when gating would have hidden the second
// occurrence.
func TestDuplicateDetectionIgnoresGating(t *testing.T) {
	dup := catalog.FromModules(catalog.ServiceModule{
		ID: "zpa",
		Tools: []catalog.ToolSpec{
			{Name: "zpa_delete_idp", Service: "zpa", Resource: "idps", Action: "delete", Kind: catalog.Delete},
			{Name: "zpa_delete_idp", Service: "zpa", Resource: "idps", Action: "delete", Kind: catalog.Delete},
		},
	})

	cfg, _ := config.Resolve(config.RawInputs{}, config.KnownNames{})
	matcher, _ := allowlist.Compile(nil)
	logger := zap.NewNop()
	if _, err := Build(dup, cfg, matcher, logger); err == nil {
		t.Fatal("expected Build to fail even though both duplicates are gated out")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	raw := config.RawInputs{CLIWriteEnabled: true, CLIWriteTools: "zia_*"}
	first := buildWith(t, catalog.New(), raw)
	second := buildWith(t, catalog.New(), raw)

	a, b := first.Tools(), second.Tools()
	if len(a) != len(b) {
		t.Fatalf("registry size differs between builds: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("registry order differs at %d: %q vs %q", i, a[i].Name, b[i].Name)
		}
	}
	if first.Summary() != second.Summary() {
		t.Fatalf("summaries differ: %+v vs %+v", first.Summary(), second.Summary())
	}
}

func TestLookupMissesUnregisteredName(t *testing.T) {
	reg := buildWith(t, miniCatalog(), config.RawInputs{})
	if _, ok := reg.Lookup("zpa_create_application_segment"); ok {
		t.Fatal("blocked tool must not be visible through Lookup")
	}
	if _, ok := reg.Lookup("no_such_tool"); ok {
		t.Fatal("unknown name must not resolve")
	}
}
