package catalog

// Schema constructors. Tool schemas are plain JSON Schema documents held as
// Go maps; the dispatch layer compiles them once at startup.

func objectSchema(props map[string]any, required []string) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func listSchema() map[string]any {
	return objectSchema(map[string]any{
		"page": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Page number to fetch.",
		},
		"page_size": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     500,
			"description": "Results per page.",
		},
		"search": map[string]any{
			"type":        "string",
			"description": "Substring filter applied by the backend.",
		},
	}, nil)
}

func getSchema(noun string) map[string]any {
	return objectSchema(map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Identifier of the " + noun + ".",
		},
	}, []string{"id"})
}

func updateSchema(noun string, props map[string]any) map[string]any {
	merged := map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Identifier of the " + noun + " to update.",
		},
	}
	for k, v := range props {
		merged[k] = v
	}
	return objectSchema(merged, []string{"id"})
}

func deleteSchema(noun string) map[string]any {
	return objectSchema(map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Identifier of the " + noun + " to delete.",
		},
		"confirm": confirmProperty(),
	}, []string{"id"})
}

// confirmProperty is the boolean acknowledgement carried by every
// delete-classified tool. It is never listed as required: omitting it is
// the signal that the caller has not confirmed yet.
func confirmProperty() map[string]any {
	return map[string]any{
		"type":        "boolean",
		"description": "Set to true to confirm. Without it the call returns confirmation_required and nothing is changed.",
	}
}
