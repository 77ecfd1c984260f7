package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/triage-ai/zscaler-mcp/internal/catalog"
)

// SchemaSet holds the compiled argument schemas of every registered tool.
// Compilation happens once at startup so a malformed schema is a boot
// failure, not a per-call surprise.
type SchemaSet struct {
	compiled map[string]*jsonschema.Schema
}

// CompileSchemas compiles the input schema of each tool.
func CompileSchemas(tools []catalog.ToolSpec) (*SchemaSet, error) {
	compiler := jsonschema.NewCompiler()

	for _, tool := range tools {
		doc, err := normalize(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", tool.Name, err)
		}
		if err := compiler.AddResource(tool.Name+".json", doc); err != nil {
			return nil, fmt.Errorf("schema for %s: %w", tool.Name, err)
		}
	}

	set := &SchemaSet{compiled: make(map[string]*jsonschema.Schema, len(tools))}
	for _, tool := range tools {
		schema, err := compiler.Compile(tool.Name + ".json")
		if err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", tool.Name, err)
		}
		set.compiled[tool.Name] = schema
	}
	return set, nil
}

// Validate checks args against the named tool's schema. A tool without a
// compiled schema accepts anything.
func (s *SchemaSet) Validate(name string, args map[string]any) error {
	schema, ok := s.compiled[name]
	if !ok {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}
	doc, err := normalize(args)
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

// normalize round-trips a Go map through JSON so the validator sees plain
// JSON types (float64 numbers, []any arrays) rather than Go literals.
func normalize(m map[string]any) (any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
