package dispatch

import (
	"testing"

	"github.com/triage-ai/zscaler-mcp/internal/catalog"
)

// Every schema shipped in the catalog must compile. A regression here
// would otherwise only surface at server startup.
func TestFullCatalogSchemasCompile(t *testing.T) {
	set, err := CompileSchemas(catalog.New().Tools())
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}
	if err := set.Validate("zia_create_rule_label", map[string]any{"name": "ok"}); err != nil {
		t.Fatalf("valid arguments rejected: %v", err)
	}
}

func TestValidateEnforcesRequiredFields(t *testing.T) {
	set, err := CompileSchemas(catalog.New().Tools())
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}

	if err := set.Validate("zia_create_rule_label", map[string]any{"description": "missing name"}); err == nil {
		t.Fatal("missing required field must fail validation")
	}
	if err := set.Validate("zpa_get_application_segment", map[string]any{}); err == nil {
		t.Fatal("get without id must fail validation")
	}
	if err := set.Validate("zpa_get_application_segment", map[string]any{"id": "123"}); err != nil {
		t.Fatalf("valid get rejected: %v", err)
	}
}

func TestValidateEnforcesTypes(t *testing.T) {
	set, err := CompileSchemas(catalog.New().Tools())
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}

	cases := []struct {
		name string
		tool string
		args map[string]any
		ok   bool
	}{
		{"integer page", "zpa_list_application_segments", map[string]any{"page": 3}, true},
		{"string page", "zpa_list_application_segments", map[string]any{"page": "three"}, false},
		{"page below minimum", "zpa_list_application_segments", map[string]any{"page": 0}, false},
		{"enum hit", "zia_get_sandbox_report", map[string]any{"md5_hash": "d41d8cd9", "details": "full"}, true},
		{"enum miss", "zia_get_sandbox_report", map[string]any{"md5_hash": "d41d8cd9", "details": "everything"}, false},
		{"boolean confirm", "zia_delete_rule_label", map[string]any{"id": "1", "confirm": true}, true},
		{"string confirm", "zia_delete_rule_label", map[string]any{"id": "1", "confirm": "yes"}, false},
		{"array field", "zia_update_security_allowlist", map[string]any{"urls": []string{"a.example.com"}}, true},
		{"scalar where array expected", "zia_update_security_allowlist", map[string]any{"urls": "a.example.com"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := set.Validate(c.tool, c.args)
			if c.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !c.ok && err == nil {
				t.Fatal("expected validation failure")
			}
		})
	}
}

// Schemas deliberately leave additionalProperties open: the backend owns
// full payload validation and new upstream fields must not break callers.
func TestValidateAllowsUnknownProperties(t *testing.T) {
	set, err := CompileSchemas(catalog.New().Tools())
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}
	args := map[string]any{"name": "ok", "upstream_only_field": true}
	if err := set.Validate("zia_create_rule_label", args); err != nil {
		t.Fatalf("unknown properties must be tolerated: %v", err)
	}
}

func TestValidateUnknownToolAcceptsAnything(t *testing.T) {
	set, err := CompileSchemas(nil)
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}
	if err := set.Validate("never_registered", map[string]any{"x": 1}); err != nil {
		t.Fatalf("unknown tools have no schema to enforce: %v", err)
	}
}

func TestValidateNilArgumentsMeansEmptyObject(t *testing.T) {
	set, err := CompileSchemas(catalog.New().Tools())
	if err != nil {
		t.Fatalf("CompileSchemas: %v", err)
	}
	if err := set.Validate("zia_get_sandbox_quota", nil); err != nil {
		t.Fatalf("nil arguments must validate as an empty object: %v", err)
	}
	if err := set.Validate("zpa_get_idp", nil); err == nil {
		t.Fatal("nil arguments must still fail schemas with required fields")
	}
}
