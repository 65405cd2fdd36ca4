package manifest

import (
	"fmt"

	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/builddeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reader implements ports.ManifestReader over TOML files on disk.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a new Reader.
func NewReader(logger ports.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read loads the manifest, then the lockfile, and returns the direct
// dependencies of the manifest's package in lockfile order.
func (r *Reader) Read(manifestPath, lockfilePath string) ([]domain.Dependency, error) {
	top, err := r.TopPackage(manifestPath)
	if err != nil {
		return nil, err
	}
	return r.Dependencies(lockfilePath, top)
}

// TopPackage loads the manifest at manifestPath and returns package.name.
func (r *Reader) TopPackage(manifestPath string) (string, error) {
	doc, err := LoadDocument(manifestPath)
	if err != nil {
		return "", err
	}

	top, err := TopPackageName(doc)
	if err != nil {
		return "", zerr.With(err, "path", manifestPath)
	}
	r.logger.Debug(fmt.Sprintf("top-level package is %q", top))

	return top, nil
}

// Dependencies loads the lockfile at lockfilePath and returns the
// dependencies of the first package named top.
func (r *Reader) Dependencies(lockfilePath, top string) ([]domain.Dependency, error) {
	doc, err := LoadDocument(lockfilePath)
	if err != nil {
		return nil, err
	}

	deps, matches, err := resolve(doc, top)
	if err != nil {
		return nil, zerr.With(err, "path", lockfilePath)
	}
	if matches > 1 {
		r.logger.Warn(fmt.Sprintf("%s lists package %q %d times, using the first entry", lockfilePath, top, matches))
	}

	return deps, nil
}

// TopPackageName returns package.name from a manifest document.
func TopPackageName(doc Document) (string, error) {
	if doc == nil {
		return "", zerr.Wrap(domain.ErrManifestFormat, "invalid manifest")
	}

	pkg, ok := doc["package"].(map[string]any)
	if !ok {
		return "", zerr.Wrap(domain.ErrPackageMissing, "invalid manifest")
	}

	name, ok := pkg["name"].(string)
	if !ok {
		return "", zerr.Wrap(domain.ErrNameMissing, "invalid manifest")
	}

	return name, nil
}

// DependencyIdentifiers returns the dependencies of the first lockfile package
// named top, preserving lockfile order. Duplicates are kept.
func DependencyIdentifiers(doc Document, top string) ([]domain.Dependency, error) {
	deps, _, err := resolve(doc, top)
	return deps, err
}

// resolve is DependencyIdentifiers that also reports how many packages matched top.
func resolve(doc Document, top string) ([]domain.Dependency, int, error) {
	rawPkgs, ok := doc["package"].([]any)
	if !ok {
		return nil, 0, zerr.Wrap(domain.ErrPackagesMissing, "invalid lockfile")
	}

	var (
		match   map[string]any
		matches int
	)
	// Entries are validated only up to the first match. Later entries are
	// inspected only to count duplicates of top.
	for i, raw := range rawPkgs {
		pkg, isTable := raw.(map[string]any)
		name, hasName := pkg["name"].(string)
		if !isTable || !hasName {
			if match != nil {
				continue
			}
			return nil, 0, zerr.With(zerr.Wrap(domain.ErrPackageEntryMalformed, "invalid lockfile"), "index", i)
		}
		if name != top {
			continue
		}
		if match == nil {
			match = pkg
		}
		matches++
	}

	if match == nil {
		return nil, 0, zerr.With(zerr.Wrap(domain.ErrTopPackageNotFound, "invalid lockfile"), "package", top)
	}

	rawDeps, ok := match["dependencies"].([]any)
	if !ok {
		return nil, matches, zerr.With(zerr.Wrap(domain.ErrDependenciesMissing, "invalid lockfile"), "package", top)
	}

	deps := make([]domain.Dependency, 0, len(rawDeps))
	for i, raw := range rawDeps {
		s, _ := raw.(string)
		dep, ok := domain.ParseDependency(s)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrDependencyMalformed, "invalid lockfile"), "dependency", raw)
			return nil, matches, zerr.With(err, "index", i)
		}
		deps = append(deps, dep)
	}

	return deps, matches, nil
}
