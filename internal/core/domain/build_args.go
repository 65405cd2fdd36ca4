package domain

// BoolFlags lists the boolean build flags forwarded to every build invocation,
// in the order they are emitted.
var BoolFlags = []string{"release", "frozen"}

// ValueFlags lists the value-carrying build flags forwarded to every build
// invocation, in the order they are emitted.
var ValueFlags = []string{"manifest-path", "target-dir", "bin", "lib", "target"}

// BuildArgs holds the flags forwarded to each dependency build.
// It is built once per run and shared read-only by every invocation.
type BuildArgs struct {
	// Bools maps a boolean flag name to whether it was set.
	Bools map[string]bool

	// Values maps a value flag name to its value. Absent keys are not forwarded.
	Values map[string]string
}

// Tokens returns the forwarded command-line tokens: boolean flags first in
// BoolFlags order, then flag/value pairs in ValueFlags order.
func (a BuildArgs) Tokens() []string {
	tokens := make([]string, 0, len(a.Bools)+2*len(a.Values))
	for _, name := range BoolFlags {
		if a.Bools[name] {
			tokens = append(tokens, "--"+name)
		}
	}
	for _, name := range ValueFlags {
		if v, ok := a.Values[name]; ok {
			tokens = append(tokens, "--"+name, v)
		}
	}
	return tokens
}
