package domain

// DefaultProgram is the build command used when no override is configured.
const DefaultProgram = "cargo"

// Invocation describes a single child build process.
type Invocation struct {
	// Program is the executable to run.
	Program string

	// Args are the arguments passed after the program name.
	Args []string

	// Env is the complete environment of the child in "KEY=VALUE" form.
	Env []string
}

// NewBuildInvocation returns the invocation building dep with the forwarded args:
// "<program> build --package <name:version> <args...>".
func NewBuildInvocation(program string, dep Dependency, args BuildArgs, env []string) Invocation {
	tokens := args.Tokens()
	argv := make([]string, 0, 3+len(tokens))
	argv = append(argv, "build", "--package", dep.ID())
	argv = append(argv, tokens...)
	return Invocation{
		Program: program,
		Args:    argv,
		Env:     env,
	}
}
