package catalog

import (
	"fmt"
	"strings"
)

// resource describes one backend object type for which tools are generated.
// When props is nil the payload falls back to the generic name/description/
// enabled triple shared by most configuration objects.
type resource struct {
	singular string
	plural   string
	props    map[string]any
	required []string
}

// acronyms that must stay uppercase when a snake_case noun is turned into
// human-readable description text.
var acronyms = map[string]string{
	"url":  "URL",
	"ip":   "IP",
	"dlp":  "DLP",
	"vpn":  "VPN",
	"gre":  "GRE",
	"pra":  "PRA",
	"ba":   "BA",
	"scim": "SCIM",
	"saml": "SAML",
	"idp":  "IdP",
	"idps": "IdPs",
	"ec":   "EC",
}

func humanize(snake string) string {
	parts := strings.Split(snake, "_")
	for i, p := range parts {
		if up, ok := acronyms[p]; ok {
			parts[i] = up
		}
	}
	return strings.Join(parts, " ")
}

func (r resource) label() string {
	return humanize(r.singular)
}

func (r resource) pluralLabel() string {
	return humanize(r.plural)
}

func (r resource) payload() (map[string]any, []string) {
	if r.props != nil {
		return r.props, r.required
	}
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the " + r.label() + ".",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Free-form description.",
		},
		"enabled": map[string]any{
			"type":        "boolean",
			"description": "Whether the " + r.label() + " is enabled.",
		},
	}, []string{"name"}
}

func article(noun string) string {
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}

// crudTools generates the standard list/get/create/update/delete set.
func crudTools(service, label string, r resource) []ToolSpec {
	return []ToolSpec{
		listTool(service, label, r),
		getTool(service, label, r),
		createTool(service, label, r),
		updateTool(service, label, r),
		deleteTool(service, label, r),
	}
}

// readTools generates the list/get pair for resources exposed read-only.
func readTools(service, label string, r resource) []ToolSpec {
	return []ToolSpec{
		listTool(service, label, r),
		getTool(service, label, r),
	}
}

func listTool(service, label string, r resource) ToolSpec {
	return ToolSpec{
		Name:        fmt.Sprintf("%s_list_%s", service, r.plural),
		Service:     service,
		Resource:    r.plural,
		Action:      ActionList,
		Kind:        ReadOnly,
		Description: fmt.Sprintf("List %s %s.", label, r.pluralLabel()),
		InputSchema: listSchema(),
	}
}

func getTool(service, label string, r resource) ToolSpec {
	return ToolSpec{
		Name:        fmt.Sprintf("%s_get_%s", service, r.singular),
		Service:     service,
		Resource:    r.plural,
		Action:      ActionGet,
		Kind:        ReadOnly,
		Description: fmt.Sprintf("Get %s %s %s by ID.", article(label), label, r.label()),
		InputSchema: getSchema(r.label()),
	}
}

func createTool(service, label string, r resource) ToolSpec {
	props, required := r.payload()
	return ToolSpec{
		Name:        fmt.Sprintf("%s_create_%s", service, r.singular),
		Service:     service,
		Resource:    r.plural,
		Action:      ActionCreate,
		Kind:        Write,
		Description: fmt.Sprintf("Create a new %s %s.", label, r.label()),
		InputSchema: objectSchema(props, required),
	}
}

func updateTool(service, label string, r resource) ToolSpec {
	props, _ := r.payload()
	return ToolSpec{
		Name:        fmt.Sprintf("%s_update_%s", service, r.singular),
		Service:     service,
		Resource:    r.plural,
		Action:      ActionUpdate,
		Kind:        Write,
		Description: fmt.Sprintf("Update an existing %s %s.", label, r.label()),
		InputSchema: updateSchema(r.label(), props),
	}
}

func deleteTool(service, label string, r resource) ToolSpec {
	return ToolSpec{
		Name:        fmt.Sprintf("%s_delete_%s", service, r.singular),
		Service:     service,
		Resource:    r.plural,
		Action:      ActionDelete,
		Kind:        Delete,
		Description: fmt.Sprintf("Delete %s %s %s. Requires confirmation.", article(label), label, r.label()),
		InputSchema: deleteSchema(r.label()),
	}
}
