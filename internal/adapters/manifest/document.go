// Package manifest reads Cargo manifests and lockfiles and resolves the
// direct dependencies of the top-level package.
package manifest

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Document is a parsed TOML document: tables are map[string]any, arrays are
// []any and strings are string.
type Document map[string]any

// LoadDocument reads the file at path and parses it as TOML.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDocumentRead, err), "path", path)
	}

	return ParseDocument(path, data)
}

// ParseDocument parses data as TOML. path is only used to annotate errors.
func ParseDocument(path string, data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		parseErr := zerr.With(errors.Join(domain.ErrDocumentParse, err), "path", path)

		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			parseErr = zerr.With(parseErr, "line", row)
			parseErr = zerr.With(parseErr, "column", col)
		}
		return nil, parseErr
	}

	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
