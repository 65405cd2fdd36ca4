package ports

// Environment supplies the environment handed to child build processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Environ returns the environment as "KEY=VALUE" strings.
	Environ() []string

	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}
