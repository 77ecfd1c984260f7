package dispatch

import (
	"fmt"

	"github.com/triage-ai/zscaler-mcp/internal/catalog"
)

// needsConfirmation reports whether a delete-classified call still lacks
// its confirmation. The gate is stateless: confirmation never outlives the
// single call that carries it.
func needsConfirmation(spec catalog.ToolSpec, args map[string]any) bool {
	if spec.Kind != catalog.Delete {
		return false
	}
	return !confirmed(args)
}

// confirmed accepts only a literal boolean true. Strings like "true" do
// not count; the schema types confirm as boolean and the gate must not be
// looser than the schema.
func confirmed(args map[string]any) bool {
	v, ok := args["confirm"]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func confirmationDetails(spec catalog.ToolSpec, args map[string]any) *ConfirmationDetails {
	echo := make(map[string]any, len(args))
	for k, v := range args {
		if k == "confirm" {
			continue
		}
		echo[k] = v
	}
	return &ConfirmationDetails{
		Tool:      spec.Name,
		Service:   spec.Service,
		Message:   fmt.Sprintf("%s is destructive and was not executed. Repeat the call with \"confirm\": true to proceed.", spec.Name),
		Arguments: echo,
	}
}

// stripConfirm removes the gate flag before arguments reach the backend;
// confirm is a protocol detail, not an API field. The original map is left
// untouched.
func stripConfirm(args map[string]any) map[string]any {
	if _, ok := args["confirm"]; !ok {
		return args
	}
	out := make(map[string]any, len(args)-1)
	for k, v := range args {
		if k == "confirm" {
			continue
		}
		out[k] = v
	}
	return out
}
