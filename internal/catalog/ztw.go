package catalog

// ztwModule covers Zscaler Cloud & Branch Connector. The writable surface
// is IP source groups; the connector group inventory is read-only.
func ztwModule() ServiceModule {
	tools := crudTools("ztw", "ZTW", resource{
		singular: "ip_source_group",
		plural:   "ip_source_groups",
		props:    ipGroupProps("Source IP addresses or ranges in the group."),
		required: []string{"name", "ip_addresses"},
	})
	tools = append(tools, readTools("ztw", "ZTW", resource{
		singular: "ec_group",
		plural:   "ec_groups",
	})...)

	return ServiceModule{
		ID:    "ztw",
		Title: "Zscaler Cloud & Branch Connector",
		Tools: tools,
	}
}
