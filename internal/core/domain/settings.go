package domain

const (
	// DefaultManifestPath is the manifest read from the working directory.
	DefaultManifestPath = "Cargo.toml"
	// DefaultLockfilePath is the lockfile read from the working directory.
	DefaultLockfilePath = "Cargo.lock"
	// DefaultConfigPath is the optional settings file read from the working directory.
	DefaultConfigPath = "build-deps.yaml"
)

// Settings holds the tool's own configuration, as opposed to the flags forwarded to cargo.
type Settings struct {
	// Cargo is the build command. Empty means resolve from the environment.
	Cargo string

	// ManifestPath is the manifest to read.
	ManifestPath string

	// LockfilePath is the lockfile to read.
	LockfilePath string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ManifestPath: DefaultManifestPath,
		LockfilePath: DefaultLockfilePath,
	}
}
