package catalog

// zdxModule covers Zscaler Digital Experience. ZDX is telemetry, so nearly
// everything is read-only; deep traces are the one object the server can
// create and tear down.
func zdxModule() ServiceModule {
	tools := []ToolSpec{
		{
			Name:        "zdx_list_applications",
			Service:     "zdx",
			Resource:    "applications",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List ZDX monitored applications with their current scores.",
			InputSchema: zdxWindowSchema(nil),
		},
		{
			Name:        "zdx_get_application",
			Service:     "zdx",
			Resource:    "applications",
			Action:      ActionGet,
			Kind:        ReadOnly,
			Description: "Get a ZDX monitored application by ID.",
			InputSchema: getSchema("application"),
		},
		{
			Name:        "zdx_get_application_score",
			Service:     "zdx",
			Resource:    "applications",
			Action:      "score",
			Kind:        ReadOnly,
			Description: "Get the ZDX score trend for an application.",
			InputSchema: zdxWindowSchema(map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Identifier of the application.",
				},
			}, "id"),
		},
		{
			Name:        "zdx_list_devices",
			Service:     "zdx",
			Resource:    "devices",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List devices reporting ZDX telemetry.",
			InputSchema: zdxWindowSchema(map[string]any{
				"user_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Restrict to devices of these users.",
				},
			}),
		},
		{
			Name:        "zdx_get_device",
			Service:     "zdx",
			Resource:    "devices",
			Action:      ActionGet,
			Kind:        ReadOnly,
			Description: "Get a ZDX device by ID.",
			InputSchema: getSchema("device"),
		},
		{
			Name:        "zdx_list_alerts",
			Service:     "zdx",
			Resource:    "alerts",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List ongoing ZDX alerts.",
			InputSchema: zdxWindowSchema(nil),
		},
		{
			Name:        "zdx_get_alert",
			Service:     "zdx",
			Resource:    "alerts",
			Action:      ActionGet,
			Kind:        ReadOnly,
			Description: "Get a ZDX alert by ID.",
			InputSchema: getSchema("alert"),
		},
		{
			Name:        "zdx_list_deep_traces",
			Service:     "zdx",
			Resource:    "deep_traces",
			Action:      ActionList,
			Kind:        ReadOnly,
			Description: "List ZDX deep trace sessions for a device.",
			InputSchema: objectSchema(map[string]any{
				"device_id": map[string]any{
					"type":        "string",
					"description": "Device whose traces to list.",
				},
			}, []string{"device_id"}),
		},
		{
			Name:        "zdx_get_deep_trace",
			Service:     "zdx",
			Resource:    "deep_traces",
			Action:      ActionGet,
			Kind:        ReadOnly,
			Description: "Get a ZDX deep trace session by ID.",
			InputSchema: getSchema("deep trace"),
		},
		{
			Name:        "zdx_create_deep_trace",
			Service:     "zdx",
			Resource:    "deep_traces",
			Action:      ActionCreate,
			Kind:        Write,
			Description: "Start a new ZDX deep trace session on a device.",
			InputSchema: objectSchema(map[string]any{
				"device_id": map[string]any{
					"type":        "string",
					"description": "Device to trace.",
				},
				"app_id": map[string]any{
					"type":        "string",
					"description": "Restrict the trace to one monitored application.",
				},
				"session_name": map[string]any{
					"type":        "string",
					"description": "Label for the trace session.",
				},
			}, []string{"device_id"}),
		},
		{
			Name:        "zdx_delete_deep_trace",
			Service:     "zdx",
			Resource:    "deep_traces",
			Action:      ActionDelete,
			Kind:        Delete,
			Description: "Stop and delete a ZDX deep trace session. Requires confirmation.",
			InputSchema: deleteSchema("deep trace"),
		},
	}

	return ServiceModule{
		ID:    "zdx",
		Title: "Zscaler Digital Experience",
		Tools: tools,
	}
}

// zdxWindowSchema is the common query shape of ZDX telemetry reads: an
// optional look-back window plus endpoint-specific properties.
func zdxWindowSchema(extra map[string]any, required ...string) map[string]any {
	props := map[string]any{
		"since": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Look-back window in hours. Defaults to 2.",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return objectSchema(props, required)
}
