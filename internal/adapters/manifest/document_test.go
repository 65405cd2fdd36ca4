package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/builddeps/internal/adapters/manifest"
	"go.trai.ch/builddeps/internal/core/domain"
)

func TestLoadDocument_Success(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", fooManifest)

	doc, err := manifest.LoadDocument(path)
	require.NoError(t, err)

	pkg, ok := doc["package"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "foo", pkg["name"])
}

func TestLoadDocument_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", "")

	doc, err := manifest.LoadDocument(path)
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestLoadDocument_ParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Cargo.toml", "[package]\nname = \n")

	_, err := manifest.LoadDocument(path)
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrDocumentParse)
	assert.Equal(t, domain.ClassParse, domain.Classify(err))

	meta := metadata(t, err)
	assert.Equal(t, path, meta["path"])
	assert.Equal(t, 2, meta["line"])
}

func TestLoadDocument_Directory(t *testing.T) {
	_, err := manifest.LoadDocument(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentRead)
}
