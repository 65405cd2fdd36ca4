package ports

import "go.trai.ch/builddeps/internal/core/domain"

// ManifestReader resolves the direct dependencies of the top-level package.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read loads the manifest at manifestPath to find the top-level package name,
	// then returns that package's dependencies from the lockfile at lockfilePath,
	// in lockfile order.
	Read(manifestPath, lockfilePath string) ([]domain.Dependency, error)

	// TopPackage returns package.name from the manifest at manifestPath.
	TopPackage(manifestPath string) (string, error)

	// Dependencies returns the dependencies of the first package named top in
	// the lockfile at lockfilePath.
	Dependencies(lockfilePath, top string) ([]domain.Dependency, error)
}
