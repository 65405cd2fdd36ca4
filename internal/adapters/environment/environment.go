// Package environment provides the process environment handed to child builds.
package environment

import (
	"os"
	"slices"
	"strings"
)

// Process implements ports.Environment over the current process environment.
type Process struct{}

// NewProcess creates a new Process environment.
func NewProcess() *Process {
	return &Process{}
}

// Environ returns os.Environ unmodified.
func (p *Process) Environ() []string {
	return os.Environ()
}

// Lookup returns os.LookupEnv(key).
func (p *Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Static implements ports.Environment over a fixed list of "KEY=VALUE" entries.
type Static struct {
	entries []string
}

// NewStatic creates a Static environment. The entries are copied.
func NewStatic(entries ...string) *Static {
	return &Static{entries: slices.Clone(entries)}
}

// Environ returns a copy of the entries.
func (s *Static) Environ() []string {
	return slices.Clone(s.entries)
}

// Lookup returns the value of the last entry for key. exec.Cmd keeps the last
// of duplicated keys, so this is the value a child process sees.
func (s *Static) Lookup(key string) (string, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(s.entries[i], "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}
