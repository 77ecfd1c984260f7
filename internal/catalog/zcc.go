package catalog

// zccModule covers Zscaler Client Connector device management. Device
// removal frees a license and forces re-enrollment, so both removal tools
// are delete-classified even though the backend treats them as POSTs.
func zccModule() ServiceModule {
	osTypeProp := map[string]any{
		"type":        "string",
		"enum":        []string{"ios", "android", "windows", "macos", "linux"},
		"description": "Restrict to one device platform.",
	}
	removalProps := map[string]any{
		"udids": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Device UDIDs to remove. Leave empty to select by platform.",
		},
		"os_type": osTypeProp,
		"confirm": confirmProperty(),
	}

	tools := []ToolSpec{
		{
			Name:        "zcc_list_devices",
			Service:     "zcc",
			Resource:    "devices",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List devices enrolled in Zscaler Client Connector.",
			InputSchema: objectSchema(map[string]any{
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
				"os_type":  osTypeProp,
				"username": map[string]any{
					"type":        "string",
					"description": "Restrict to one user's devices.",
				},
			}, nil),
		},
		{
			Name:        "zcc_download_devices",
			Service:     "zcc",
			Resource:    "devices",
			Action:      "download",
			Kind:        ReadOnly,
			Description: "Download the full ZCC device inventory as CSV.",
			InputSchema: objectSchema(map[string]any{
				"os_types": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Platforms to include. Empty means all.",
				},
				"registration_types": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Registration states to include, e.g. registered, removal_pending.",
				},
			}, nil),
		},
		{
			Name:        "zcc_list_forwarding_profiles",
			Service:     "zcc",
			Resource:    "forwarding_profiles",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List ZCC forwarding profiles.",
			InputSchema: listSchema(),
		},
		{
			Name:        "zcc_list_trusted_networks",
			Service:     "zcc",
			Resource:    "trusted_networks",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List ZCC trusted network definitions.",
			InputSchema: listSchema(),
		},
		{
			Name:        "zcc_remove_devices",
			Service:     "zcc",
			Resource:    "devices",
			Action:      "remove",
			Kind:        Delete,
			Description: "Mark ZCC devices for removal at next check-in. Requires confirmation.",
			InputSchema: objectSchema(removalProps, nil),
		},
		{
			Name:        "zcc_force_remove_devices",
			Service:     "zcc",
			Resource:    "devices",
			Action:      "force_remove",
			Kind:        Delete,
			Description: "Immediately remove ZCC devices and revoke their enrollment. Requires confirmation.",
			InputSchema: objectSchema(removalProps, nil),
		},
	}

	return ServiceModule{
		ID:    "zcc",
		Title: "Zscaler Client Connector",
		Tools: tools,
	}
}
