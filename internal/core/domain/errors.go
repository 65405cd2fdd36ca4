package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrDocumentRead is returned when a manifest or lockfile cannot be read.
	ErrDocumentRead = zerr.New("failed to read document")

	// ErrDocumentParse is returned when a manifest or lockfile is not well-formed TOML.
	ErrDocumentParse = zerr.New("failed to parse toml")

	// ErrManifestFormat is returned when the manifest root is not a table.
	ErrManifestFormat = zerr.New("failed to parse Cargo.toml: incorrect format")

	// ErrPackageMissing is returned when the manifest has no [package] table.
	ErrPackageMissing = zerr.New("failed to parse package")

	// ErrNameMissing is returned when the manifest [package] table has no string name.
	ErrNameMissing = zerr.New("failed to parse name")

	// ErrPackagesMissing is returned when the lockfile has no [[package]] array.
	ErrPackagesMissing = zerr.New("failed to find packages in Cargo.lock")

	// ErrPackageEntryMalformed is returned when a lockfile [[package]] entry
	// before the top package is not a table with a string name.
	ErrPackageEntryMalformed = zerr.New("failed to parse package entry in Cargo.lock")

	// ErrTopPackageNotFound is returned when no lockfile package matches the manifest name.
	ErrTopPackageNotFound = zerr.New("failed to find top package")

	// ErrDependenciesMissing is returned when the matched package has no dependencies array.
	ErrDependenciesMissing = zerr.New("error parsing dependencies table")

	// ErrDependencyMalformed is returned when a dependency string lacks a name or version.
	ErrDependencyMalformed = zerr.New("failed to parse name/version from dependency string")

	// ErrSpawnFailed is returned when the build command cannot be started.
	ErrSpawnFailed = zerr.New("failed to execute process")

	// ErrChildExited is returned when a build process exits with a non-zero status.
	ErrChildExited = zerr.New("build process exited with non-zero status")

	// ErrChildSignaled is returned when a build process is terminated by a signal.
	ErrChildSignaled = zerr.New("build process terminated by signal")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnexpectedArgument is returned when the CLI receives a positional argument
	// other than the subcommand name cargo passes along.
	ErrUnexpectedArgument = zerr.New("unexpected argument")
)

// ErrorClass groups errors by how the run failed.
type ErrorClass uint8

const (
	// ClassUnknown is an error outside the known taxonomy.
	ClassUnknown ErrorClass = iota
	// ClassIO means an input file could not be read.
	ClassIO
	// ClassParse means an input file was not well-formed.
	ClassParse
	// ClassSchema means an input file was well-formed but had the wrong shape.
	ClassSchema
	// ClassSpawn means the build command could not be launched.
	ClassSpawn
	// ClassChildFailure means a build process exited non-zero or was signaled.
	ClassChildFailure
)

func (c ErrorClass) String() string {
	switch c {
	case ClassIO:
		return "io"
	case ClassParse:
		return "parse"
	case ClassSchema:
		return "schema"
	case ClassSpawn:
		return "spawn"
	case ClassChildFailure:
		return "child-failure"
	default:
		return "unknown"
	}
}

var errorClasses = []struct {
	class ErrorClass
	errs  []error
}{
	{ClassIO, []error{ErrDocumentRead, ErrConfigReadFailed}},
	{ClassParse, []error{ErrDocumentParse, ErrConfigParseFailed}},
	{ClassSchema, []error{
		ErrManifestFormat,
		ErrPackageMissing,
		ErrNameMissing,
		ErrPackagesMissing,
		ErrPackageEntryMalformed,
		ErrTopPackageNotFound,
		ErrDependenciesMissing,
		ErrDependencyMalformed,
	}},
	{ClassSpawn, []error{ErrSpawnFailed}},
	{ClassChildFailure, []error{ErrChildExited, ErrChildSignaled}},
}

// Classify returns the class of err by looking for a known sentinel in its chain.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}
	for _, c := range errorClasses {
		for _, target := range c.errs {
			if errors.Is(err, target) {
				return c.class
			}
		}
	}
	return ClassUnknown
}
