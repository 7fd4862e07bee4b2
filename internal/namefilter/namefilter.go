// Package namefilter drops unwanted display names from a listing.
package namefilter

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Filter excludes names matching glob ignore patterns or carrying a
// skipped base name. Display names are matched slash-normalized, the
// way the listing pipeline produces them.
type Filter struct {
	patterns  []*regexp.Regexp
	skipNames map[string]bool
}

// New compiles the given glob patterns ("*" matches within one path
// segment, "**" matches across segments, "?" matches one character)
// and records base names to skip exactly. A bad pattern fails the
// whole constructor.
func New(patterns []string, skipNames []string) (*Filter, error) {
	f := &Filter{skipNames: make(map[string]bool, len(skipNames))}
	for _, p := range patterns {
		re, err := compileGlob(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	for _, n := range skipNames {
		if n = strings.TrimSpace(n); n != "" {
			f.skipNames[n] = true
		}
	}
	return f, nil
}

// compileGlob converts a glob pattern to an anchored regexp.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	// Escape regex special chars first, then unescape the glob
	// metacharacters into their regex equivalents.
	expr := regexp.QuoteMeta(normalized)
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")

	return regexp.Compile("^" + expr + "$")
}

// Allowed reports whether a display name survives the filter.
func (f *Filter) Allowed(name string) bool {
	if f == nil {
		return true
	}
	normalized := strings.ReplaceAll(name, "\\", "/")

	if f.skipNames[path.Base(normalized)] {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(normalized) {
			return false
		}
	}
	return true
}

// FilterNames returns only the names allowed by the filter, in order.
func (f *Filter) FilterNames(names []string) []string {
	if f == nil {
		return names
	}
	var allowed []string
	for _, name := range names {
		if f.Allowed(name) {
			allowed = append(allowed, name)
		}
	}
	return allowed
}
