// Package config provides the settings loader for cargo-build-deps.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/builddeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at configPath. A missing file yields the
// defaults. Relative manifest and lockfile paths in the file are resolved
// against the directory holding it.
func (l *Loader) Load(configPath string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	var file Settingsfile
	found, err := readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if !found {
		l.Logger.Debug(fmt.Sprintf("no config file at %s, using defaults", configPath))
		return settings, nil
	}

	l.Logger.Debug("loaded config from " + configPath)

	settings.Cargo = file.Cargo
	if file.Manifest != "" {
		settings.ManifestPath = resolvePath(configPath, file.Manifest)
	}
	if file.Lockfile != "" {
		settings.LockfilePath = resolvePath(configPath, file.Lockfile)
	}

	return settings, nil
}

func resolvePath(configPath, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML decodes the YAML file at configPath into target,
// rejecting unknown keys. It reports false when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath comes from the command line or the default name
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(domain.ErrConfigReadFailed, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Join(domain.ErrConfigParseFailed, err)
	}

	return true, nil
}
