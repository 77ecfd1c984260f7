package catalog

// zidentityModule covers the Zidentity directory. Identity lifecycle is
// owned by the upstream IdP, so the whole module is read-only.
func zidentityModule() ServiceModule {
	tools := readTools("zidentity", "Zidentity", resource{singular: "user", plural: "users"})
	tools = append(tools, readTools("zidentity", "Zidentity", resource{singular: "group", plural: "groups"})...)

	return ServiceModule{
		ID:    "zidentity",
		Title: "Zscaler Identity",
		Tools: tools,
	}
}
