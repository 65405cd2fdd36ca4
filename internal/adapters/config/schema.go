package config

// Settingsfile represents the structure of the build-deps.yaml configuration file.
type Settingsfile struct {
	Cargo    string `yaml:"cargo"`
	Manifest string `yaml:"manifest"`
	Lockfile string `yaml:"lockfile"`
}
