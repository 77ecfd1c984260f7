// Package config resolves the effective server configuration from CLI
// flags and environment variables. Resolution is pure: callers collect the
// raw inputs, Resolve turns them into an EffectiveConfig plus warnings, and
// nothing here reads process state.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// RawInputs carries the unparsed configuration exactly as the process
// received it. CLI values win over environment values per field; the write
// switch is the one exception and is enabled if either source enables it.
type RawInputs struct {
	CLIServices string
	EnvServices string

	CLITools string
	EnvTools string

	CLIWriteEnabled bool
	EnvWriteEnabled string

	CLIWriteTools string
	EnvWriteTools string
}

// KnownNames are the catalog-provided name sets used to flag selections
// that cannot match anything.
type KnownNames struct {
	Services map[string]struct{}
	Tools    map[string]struct{}
}

// Warning records a configuration value that was accepted but can have no
// effect, such as a service name the catalog does not know.
type Warning struct {
	Field string
	Value string
}

func (w Warning) String() string {
	return fmt.Sprintf("unknown %s %q in configuration; it will match nothing", w.Field, w.Value)
}

// Selection is an exact-name filter. The zero Selection selects everything;
// a non-empty one selects exactly the named items.
type Selection struct {
	names map[string]struct{}
}

func selectionOf(names []string) Selection {
	if len(names) == 0 {
		return Selection{}
	}
	s := Selection{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

// All reports whether the selection is the unrestricted default.
func (s Selection) All() bool {
	return s.names == nil
}

// Contains reports whether name is selected. Every name is selected when
// the selection is unrestricted.
func (s Selection) Contains(name string) bool {
	if s.names == nil {
		return true
	}
	_, ok := s.names[name]
	return ok
}

// Names returns the selected names, sorted. Nil means unrestricted.
func (s Selection) Names() []string {
	if s.names == nil {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// EffectiveConfig is the resolved configuration the rest of the server
// consumes.
type EffectiveConfig struct {
	Services       Selection
	Tools          Selection
	WriteEnabled   bool
	WriteAllowlist []string
}

// Resolve applies precedence and validity checks to the raw inputs.
// Unknown service and tool names are kept (they simply match nothing) and
// reported as warnings so a typo is visible instead of silent.
func Resolve(raw RawInputs, known KnownNames) (EffectiveConfig, []Warning) {
	var warnings []Warning

	services := splitList(pick(raw.CLIServices, raw.EnvServices))
	for _, svc := range services {
		if _, ok := known.Services[svc]; !ok {
			warnings = append(warnings, Warning{Field: "service", Value: svc})
		}
	}

	tools := splitList(pick(raw.CLITools, raw.EnvTools))
	for _, tool := range tools {
		if _, ok := known.Tools[tool]; !ok {
			warnings = append(warnings, Warning{Field: "tool", Value: tool})
		}
	}

	cfg := EffectiveConfig{
		Services:       selectionOf(services),
		Tools:          selectionOf(tools),
		WriteEnabled:   raw.CLIWriteEnabled || parseBool(raw.EnvWriteEnabled),
		WriteAllowlist: splitList(pick(raw.CLIWriteTools, raw.EnvWriteTools)),
	}
	return cfg, warnings
}

// pick returns the CLI value when set, otherwise the environment value.
func pick(cli, env string) string {
	if strings.TrimSpace(cli) != "" {
		return cli
	}
	return env
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseBool accepts the usual spellings of a boolean environment variable.
// Anything unrecognized, including empty, is false.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
