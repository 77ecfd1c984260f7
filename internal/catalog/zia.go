package catalog

// ziaModule covers Zscaler Internet Access: URL and firewall policy, network
// objects, locations, DLP, and the sandbox. ZIA writes land in a pending
// state; zia_activate_configuration pushes them live.
func ziaModule() ServiceModule {
	crud := []resource{
		{
			singular: "rule_label",
			plural:   "rule_labels",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the label.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
			},
			required: []string{"name"},
		},
		{
			singular: "url_category",
			plural:   "url_categories",
			props: map[string]any{
				"configured_name": map[string]any{
					"type":        "string",
					"description": "Name of the custom category.",
				},
				"super_category": map[string]any{
					"type":        "string",
					"description": "Parent super-category, e.g. USER_DEFINED.",
				},
				"urls": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "URLs the category matches.",
				},
				"db_categorized_urls": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "URLs retained with their database categorization.",
				},
				"custom_category": map[string]any{
					"type":        "boolean",
					"description": "Marks the category as admin-defined.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
			},
			required: []string{"configured_name", "super_category"},
		},
		{
			singular: "url_filtering_rule",
			plural:   "url_filtering_rules",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the rule.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"state": map[string]any{
					"type":        "string",
					"enum":        []string{"ENABLED", "DISABLED"},
					"description": "Whether the rule is active.",
				},
				"order": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"description": "Evaluation order of the rule.",
				},
				"url_categories": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "URL categories the rule applies to.",
				},
				"protocols": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Protocols the rule applies to, e.g. HTTPS_RULE.",
				},
				"action": map[string]any{
					"type":        "string",
					"enum":        []string{"ALLOW", "CAUTION", "BLOCK"},
					"description": "Action taken on matching traffic.",
				},
			},
			required: []string{"name", "action"},
		},
		{
			singular: "firewall_filtering_rule",
			plural:   "firewall_filtering_rules",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the rule.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"state": map[string]any{
					"type":        "string",
					"enum":        []string{"ENABLED", "DISABLED"},
					"description": "Whether the rule is active.",
				},
				"order": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"description": "Evaluation order of the rule.",
				},
				"action": map[string]any{
					"type":        "string",
					"enum":        []string{"ALLOW", "BLOCK_DROP", "BLOCK_RESET", "BLOCK_ICMP"},
					"description": "Action taken on matching traffic.",
				},
				"src_ips": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Source IP addresses or ranges.",
				},
				"dest_addresses": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Destination addresses, FQDNs, or wildcard domains.",
				},
				"nw_services": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Network services the rule applies to.",
				},
			},
			required: []string{"name", "action"},
		},
		{
			singular: "network_service",
			plural:   "network_services",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the service.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"tcp_ports": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"start": map[string]any{"type": "integer"},
							"end":   map[string]any{"type": "integer"},
						},
					},
					"description": "TCP port ranges.",
				},
				"udp_ports": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"start": map[string]any{"type": "integer"},
							"end":   map[string]any{"type": "integer"},
						},
					},
					"description": "UDP port ranges.",
				},
			},
			required: []string{"name"},
		},
		{
			singular: "network_service_group",
			plural:   "network_service_groups",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the group.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"service_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Network services in the group.",
				},
			},
			required: []string{"name"},
		},
		{
			singular: "ip_source_group",
			plural:   "ip_source_groups",
			props:    ipGroupProps("Source IP addresses or ranges in the group."),
			required: []string{"name", "ip_addresses"},
		},
		{
			singular: "ip_destination_group",
			plural:   "ip_destination_groups",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the group.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"type": map[string]any{
					"type":        "string",
					"enum":        []string{"DSTN_IP", "DSTN_FQDN", "DSTN_DOMAIN", "DSTN_OTHER"},
					"description": "Kind of destinations the group holds.",
				},
				"addresses": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Destination addresses, FQDNs, or wildcard domains.",
				},
				"countries": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Destination countries as COUNTRY_<ISO> codes.",
				},
			},
			required: []string{"name", "type"},
		},
		{
			singular: "location",
			plural:   "locations",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the location.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"country": map[string]any{
					"type":        "string",
					"description": "Country of the location.",
				},
				"tz": map[string]any{
					"type":        "string",
					"description": "Time zone of the location.",
				},
				"ip_addresses": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Egress IP addresses bound to the location.",
				},
				"auth_required": map[string]any{
					"type":        "boolean",
					"description": "Whether user authentication is enforced.",
				},
				"surrogate_ip": map[string]any{
					"type":        "boolean",
					"description": "Whether surrogate IP user mapping is enabled.",
				},
			},
			required: []string{"name"},
		},
		{
			singular: "vpn_credential",
			plural:   "vpn_credentials",
			props: map[string]any{
				"type": map[string]any{
					"type":        "string",
					"enum":        []string{"UFQDN", "IP"},
					"description": "Authentication type of the tunnel credential.",
				},
				"fqdn": map[string]any{
					"type":        "string",
					"description": "User FQDN for UFQDN credentials.",
				},
				"ip_address": map[string]any{
					"type":        "string",
					"description": "Static IP for IP credentials.",
				},
				"pre_shared_key": map[string]any{
					"type":        "string",
					"description": "Pre-shared key of the tunnel.",
				},
				"comments": map[string]any{
					"type":        "string",
					"description": "Free-form comments.",
				},
			},
			required: []string{"type", "pre_shared_key"},
		},
		{
			singular: "static_ip",
			plural:   "static_ips",
			props: map[string]any{
				"ip_address": map[string]any{
					"type":        "string",
					"description": "The static IP address.",
				},
				"comment": map[string]any{
					"type":        "string",
					"description": "Free-form comment.",
				},
				"routable_ip": map[string]any{
					"type":        "boolean",
					"description": "Whether the address is publicly routable.",
				},
				"latitude": map[string]any{
					"type":        "number",
					"description": "Latitude of the address, for geo policy.",
				},
				"longitude": map[string]any{
					"type":        "number",
					"description": "Longitude of the address, for geo policy.",
				},
			},
			required: []string{"ip_address"},
		},
		{
			singular: "dlp_dictionary",
			plural:   "dlp_dictionaries",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the dictionary.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Free-form description.",
				},
				"custom_phrase_match_type": map[string]any{
					"type":        "string",
					"enum":        []string{"MATCH_ALL_CUSTOM_PHRASE_PATTERN_DICTIONARY", "MATCH_ANY_CUSTOM_PHRASE_PATTERN_DICTIONARY"},
					"description": "How phrases and patterns combine.",
				},
				"phrases": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"action": map[string]any{"type": "string"},
							"phrase": map[string]any{"type": "string"},
						},
					},
					"description": "Phrases the dictionary matches.",
				},
				"patterns": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"action":  map[string]any{"type": "string"},
							"pattern": map[string]any{"type": "string"},
						},
					},
					"description": "Regex patterns the dictionary matches.",
				},
			},
			required: []string{"name"},
		},
		{
			singular: "dlp_notification_template",
			plural:   "dlp_notification_templates",
			props: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the template.",
				},
				"subject": map[string]any{
					"type":        "string",
					"description": "Subject line of the notification email.",
				},
				"plain_text_message": map[string]any{
					"type":        "string",
					"description": "Plain-text body of the notification.",
				},
				"html_message": map[string]any{
					"type":        "string",
					"description": "HTML body of the notification.",
				},
				"attach_content": map[string]any{
					"type":        "boolean",
					"description": "Whether the triggering content is attached.",
				},
			},
			required: []string{"name", "subject", "plain_text_message"},
		},
	}

	var tools []ToolSpec
	for _, r := range crud {
		tools = append(tools, crudTools("zia", "ZIA", r)...)
	}
	tools = append(tools, ziaSandboxTools()...)
	tools = append(tools, ziaActivationTools()...)
	tools = append(tools, ziaSecurityPolicyTools()...)
	tools = append(tools, ziaDirectoryTools()...)

	return ServiceModule{
		ID:    "zia",
		Title: "Zscaler Internet Access",
		Tools: tools,
	}
}

func ziaSandboxTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "zia_get_sandbox_report",
			Service:     "zia",
			Resource:    "sandbox",
			Action:      "report",
			Kind:        ReadOnly,
			Description: "Get the ZIA Sandbox report for a file MD5 hash.",
			InputSchema: objectSchema(map[string]any{
				"md5_hash": map[string]any{
					"type":        "string",
					"description": "MD5 hash of the analyzed file.",
				},
				"details": map[string]any{
					"type":        "string",
					"enum":        []string{"full", "summary"},
					"description": "Report depth. Defaults to summary.",
				},
			}, []string{"md5_hash"}),
		},
		{
			Name:        "zia_get_sandbox_quota",
			Service:     "zia",
			Resource:    "sandbox",
			Action:      "quota",
			Kind:        ReadOnly,
			Description: "Get the daily ZIA Sandbox submission quota and usage.",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "zia_submit_sandbox_sample",
			Service:     "zia",
			Resource:    "sandbox",
			Action:      "submit",
			Kind:        Write,
			Description: "Submit a file to the ZIA Sandbox for detonation.",
			InputSchema: objectSchema(map[string]any{
				"file_url": map[string]any{
					"type":        "string",
					"description": "URL of the file to fetch and submit.",
				},
				"force": map[string]any{
					"type":        "boolean",
					"description": "Re-analyze even if a verdict is already cached.",
				},
			}, []string{"file_url"}),
		},
	}
}

func ziaActivationTools() []ToolSpec {
	return []ToolSpec{
		{
			Name:        "zia_activate_configuration",
			Service:     "zia",
			Resource:    "activation",
			Action:      "activate",
			Kind:        Write,
			Description: "Activate pending ZIA configuration changes.",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "zia_get_activation_status",
			Service:     "zia",
			Resource:    "activation",
			Action:      "status",
			Kind:        ReadOnly,
			Description: "Get the ZIA configuration activation status.",
			InputSchema: objectSchema(nil, nil),
		},
	}
}

func ziaSecurityPolicyTools() []ToolSpec {
	urlList := func(desc string) map[string]any {
		return objectSchema(map[string]any{
			"urls": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": desc,
			},
		}, []string{"urls"})
	}
	return []ToolSpec{
		{
			Name:        "zia_get_security_allowlist",
			Service:     "zia",
			Resource:    "security_allowlist",
			Action:      "fetch",
			Kind:        ReadOnly,
			Description: "Get the ZIA security policy URL allowlist.",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "zia_update_security_allowlist",
			Service:     "zia",
			Resource:    "security_allowlist",
			Action:      "replace",
			Kind:        Write,
			Description: "Replace the ZIA security policy URL allowlist.",
			InputSchema: urlList("Full replacement list of allowed URLs."),
		},
		{
			Name:        "zia_get_security_denylist",
			Service:     "zia",
			Resource:    "security_denylist",
			Action:      "fetch",
			Kind:        ReadOnly,
			Description: "Get the ZIA security policy URL denylist.",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "zia_update_security_denylist",
			Service:     "zia",
			Resource:    "security_denylist",
			Action:      "replace",
			Kind:        Write,
			Description: "Replace the ZIA security policy URL denylist.",
			InputSchema: urlList("Full replacement list of denied URLs."),
		},
	}
}

// ziaDirectoryTools exposes the identity and tunnel inventory ZIA manages
// itself. All of it is read-only here; user lifecycle stays in the IdP.
func ziaDirectoryTools() []ToolSpec {
	tools := readTools("zia", "ZIA", resource{singular: "user", plural: "users"})
	tools = append(tools,
		listTool("zia", "ZIA", resource{singular: "group", plural: "groups"}),
		listTool("zia", "ZIA", resource{singular: "department", plural: "departments"}),
		listTool("zia", "ZIA", resource{singular: "location_group", plural: "location_groups"}),
	)
	tools = append(tools, readTools("zia", "ZIA", resource{singular: "gre_tunnel", plural: "gre_tunnels"})...)
	return tools
}

func ipGroupProps(addressDesc string) map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the group.",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Free-form description.",
		},
		"ip_addresses": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": addressDesc,
		},
	}
}
