package domain

import (
	"strconv"
	"strings"
)

// Dependency is a direct dependency of the top-level package as recorded in the lockfile.
type Dependency struct {
	// Name is the crate name (e.g., "serde").
	Name string

	// Version is the pinned version (e.g., "1.0.197").
	Version string
}

// ID returns the package selector passed to the build command, in "name:version" form.
func (d Dependency) ID() string {
	return d.Name + ":" + d.Version
}

// String implements fmt.Stringer.
func (d Dependency) String() string {
	return d.ID()
}

// ParseDependency parses a lockfile dependency string of the form
// "<name> <version> [<source>]". Only the first two space-separated tokens
// are consumed. It reports false when fewer than two tokens are present.
func ParseDependency(s string) (Dependency, bool) {
	name, rest, ok := strings.Cut(s, " ")
	if !ok {
		return Dependency{}, false
	}
	version, _, _ := strings.Cut(rest, " ")
	return Dependency{Name: name, Version: version}, true
}

// FormatIDs renders dependency identifiers as a bracketed, quoted list,
// e.g. ["bar:1.0.0", "baz:2.3.1"].
func FormatIDs(deps []Dependency) string {
	quoted := make([]string, len(deps))
	for i, d := range deps {
		quoted[i] = strconv.Quote(d.ID())
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
