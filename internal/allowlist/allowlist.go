// Package allowlist implements the write-tool name matcher. Patterns are
// either literal tool names or globs in which * matches any run of
// characters. A glob may carry at most two literal segments (a prefix and a
// suffix); anything more is rejected at compile time.
package allowlist

import (
	"fmt"
	"strings"
)

// Warning describes a pattern rejected during compilation. Rejected
// patterns are excluded from matching, never silently widened.
type Warning struct {
	Pattern string
	Reason  string
}

func (w Warning) String() string {
	return fmt.Sprintf("allowlist pattern %q ignored: %s", w.Pattern, w.Reason)
}

type matchKind int

const (
	matchExact matchKind = iota
	matchAny
	matchPrefix
	matchSuffix
	matchContains
	matchBounded
)

type pattern struct {
	raw    string
	kind   matchKind
	prefix string
	suffix string
	needle string
}

// Matcher holds compiled allowlist patterns. The zero value matches
// nothing; so does a Matcher compiled from an empty list.
type Matcher struct {
	patterns []pattern
}

// Compile parses the given patterns. Malformed patterns are dropped and
// reported as warnings; the returned matcher covers only the valid ones.
func Compile(raw []string) (*Matcher, []Warning) {
	m := &Matcher{}
	var warnings []Warning
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			warnings = append(warnings, Warning{Pattern: p, Reason: "empty pattern"})
			continue
		}
		compiled, err := compileOne(p)
		if err != nil {
			warnings = append(warnings, Warning{Pattern: p, Reason: err.Error()})
			continue
		}
		m.patterns = append(m.patterns, compiled)
	}
	return m, warnings
}

func compileOne(p string) (pattern, error) {
	if !strings.Contains(p, "*") {
		return pattern{raw: p, kind: matchExact}, nil
	}

	leading := strings.HasPrefix(p, "*")
	trailing := strings.HasSuffix(p, "*")
	var segments []string
	for _, seg := range strings.Split(p, "*") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	switch len(segments) {
	case 0:
		return pattern{raw: p, kind: matchAny}, nil
	case 1:
		switch {
		case leading && trailing:
			return pattern{raw: p, kind: matchContains, needle: segments[0]}, nil
		case leading:
			return pattern{raw: p, kind: matchSuffix, suffix: segments[0]}, nil
		default:
			return pattern{raw: p, kind: matchPrefix, prefix: segments[0]}, nil
		}
	case 2:
		if leading || trailing {
			return pattern{}, fmt.Errorf("more than two literal positions")
		}
		return pattern{raw: p, kind: matchBounded, prefix: segments[0], suffix: segments[1]}, nil
	default:
		return pattern{}, fmt.Errorf("more than two literal positions")
	}
}

// Allowed reports whether the tool name matches any compiled pattern.
// Matching is case-sensitive and covers the whole name.
func (m *Matcher) Allowed(name string) bool {
	for _, p := range m.patterns {
		if p.matches(name) {
			return true
		}
	}
	return false
}

// PatternCount returns the number of patterns that survived compilation.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

func (p pattern) matches(name string) bool {
	switch p.kind {
	case matchExact:
		return name == p.raw
	case matchAny:
		return true
	case matchPrefix:
		return strings.HasPrefix(name, p.prefix)
	case matchSuffix:
		return strings.HasSuffix(name, p.suffix)
	case matchContains:
		return strings.Contains(name, p.needle)
	case matchBounded:
		return len(name) >= len(p.prefix)+len(p.suffix) &&
			strings.HasPrefix(name, p.prefix) &&
			strings.HasSuffix(name, p.suffix)
	default:
		return false
	}
}
