package catalog

// zpaModule covers Zscaler Private Access: application segments, the
// connector and service-edge fleet, the policy sets, and privileged remote
// access objects. Identity-sourced objects (SCIM, SAML, IdP) are read-only.
func zpaModule() ServiceModule {
	crud := []resource{
		{
			singular: "application_segment",
			plural:   "application_segments",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the application segment.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"domain_names": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Domains and IP addresses the segment covers.",
				},
				"segment_group_id": map[string]any{
					"type":        "string",
					"description": "Segment group the application belongs to.",
				},
				"server_group_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Server groups serving the application.",
				},
				"tcp_port_ranges": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "TCP port ranges as from,to pairs, e.g. [\"443\",\"443\"].",
				},
				"udp_port_ranges": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "UDP port ranges as from,to pairs.",
				},
				"enabled": map[string]any{
					"type":        "boolean",
					"description": "Whether the segment is enabled.",
				},
			},
			required: []string{"name", "domain_names", "segment_group_id"},
		},
		{
			singular: "segment_group",
			plural:   "segment_groups",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the segment group.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"enabled": map[string]any{
					"type":        "boolean",
					"description": "Whether the group is enabled.",
				},
				"application_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Application segments to attach to the group.",
				},
			},
			required: []string{"name"},
		},
		{singular: "server_group", plural: "server_groups"},
		{singular: "app_connector_group", plural: "app_connector_groups"},
		{singular: "service_edge_group", plural: "service_edge_groups"},
		{singular: "application_server", plural: "application_servers"},
		{
			singular: "access_policy_rule",
			plural:   "access_policy_rules",
			props:    policyRuleProps("ALLOW", "DENY"),
			required: []string{"name", "action"},
		},
		{
			singular: "timeout_policy_rule",
			plural:   "timeout_policy_rules",
			props:    policyRuleProps("RE_AUTH"),
			required: []string{"name", "action"},
		},
		{
			singular: "forwarding_policy_rule",
			plural:   "forwarding_policy_rules",
			props:    policyRuleProps("INTERCEPT", "BYPASS"),
			required: []string{"name", "action"},
		},
		{
			singular: "isolation_policy_rule",
			plural:   "isolation_policy_rules",
			props:    policyRuleProps("ISOLATE", "BYPASS_ISOLATE"),
			required: []string{"name", "action"},
		},
		{
			singular: "inspection_policy_rule",
			plural:   "inspection_policy_rules",
			props:    policyRuleProps("INSPECT", "BYPASS_INSPECT"),
			required: []string{"name", "action"},
		},
		{singular: "provisioning_key", plural: "provisioning_keys"},
		{singular: "pra_portal", plural: "pra_portals"},
	}

	createDelete := []resource{
		{
			singular: "pra_credential",
			plural:   "pra_credentials",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the credential.",
				},
				"credential_type": map[string]any{
					"type":        "string",
					"enum":        []string{"USERNAME_PASSWORD", "SSH_KEY", "PASSWORD"},
					"description": "Kind of secret the credential stores.",
				},
				"user_name": map[string]any{
					"type":        "string",
					"description": "Login name for USERNAME_PASSWORD credentials.",
				},
				"password": map[string]any{
					"type":        "string",
					"description": "Secret for password-bearing credential types.",
				},
				"private_key": map[string]any{
					"type":        "string",
					"description": "PEM private key for SSH_KEY credentials.",
				},
			},
			required: []string{"name", "credential_type"},
		},
		{
			singular: "ba_certificate",
			plural:   "ba_certificates",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the certificate.",
				},
				"cert_blob": map[string]any{
					"type":        "string",
					"description": "PEM certificate chain, leaf first.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
			},
			required: []string{"name", "cert_blob"},
		},
	}

	readOnly := []resource{
		{singular: "scim_group", plural: "scim_groups"},
		{singular: "saml_attribute", plural: "saml_attributes"},
		{singular: "posture_profile", plural: "posture_profiles"},
		{singular: "trusted_network", plural: "trusted_networks"},
		{singular: "idp", plural: "idps"},
		{singular: "machine_group", plural: "machine_groups"},
		{singular: "enrollment_certificate", plural: "enrollment_certificates"},
	}

	var tools []ToolSpec
	for _, r := range crud {
		tools = append(tools, crudTools("zpa", "ZPA", r)...)
	}
	for _, r := range createDelete {
		tools = append(tools, readTools("zpa", "ZPA", r)...)
		tools = append(tools, createTool("zpa", "ZPA", r), deleteTool("zpa", "ZPA", r))
	}
	for _, r := range readOnly {
		tools = append(tools, readTools("zpa", "ZPA", r)...)
	}

	return ServiceModule{
		ID:    "zpa",
		Title: "Zscaler Private Access",
		Tools: tools,
	}
}

// policyRuleProps is the shared payload shape of the ZPA policy rule types,
// parameterized by the action values the policy set accepts.
func policyRuleProps(actions ...string) map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the rule.",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Free-form description.",
		},
		"action": map[string]any{
			"type":        "string",
			"enum":        actions,
			"description": "Action the rule takes when its conditions match.",
		},
		"operator": map[string]any{
			"type":        "string",
			"enum":        []string{"AND", "OR"},
			"description": "How top-level conditions combine.",
		},
		"conditions": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "object"},
			"description": "Condition blocks of operand sets (app, SCIM group, posture, and so on).",
		},
		"rule_order": map[string]any{
			"type":        "string",
			"description": "Evaluation position within the policy set.",
		},
	}
}
