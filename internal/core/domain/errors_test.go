package domain_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorClass
	}{
		{"nil", nil, domain.ClassUnknown},
		{"unrelated", errors.New("boom"), domain.ClassUnknown},
		{"io", errors.Join(domain.ErrDocumentRead, os.ErrNotExist), domain.ClassIO},
		{"parse", errors.Join(domain.ErrDocumentParse, errors.New("bad toml")), domain.ClassParse},
		{"config parse", zerr.Wrap(domain.ErrConfigParseFailed, "build-deps.yaml"), domain.ClassParse},
		{
			"schema with metadata",
			zerr.With(zerr.Wrap(domain.ErrTopPackageNotFound, "invalid lockfile"), "package", "foo"),
			domain.ClassSchema,
		},
		{"lockfile entry", zerr.Wrap(domain.ErrPackageEntryMalformed, "invalid lockfile"), domain.ClassSchema},
		{"spawn", errors.Join(domain.ErrSpawnFailed, os.ErrPermission), domain.ClassSpawn},
		{"exit", zerr.Wrap(domain.ErrChildExited, "bar:1.0.0"), domain.ClassChildFailure},
		{"signal", zerr.Wrap(domain.ErrChildSignaled, "bar:1.0.0"), domain.ClassChildFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.err))
		})
	}
}

func TestErrorClass_String(t *testing.T) {
	assert.Equal(t, "io", domain.ClassIO.String())
	assert.Equal(t, "parse", domain.ClassParse.String())
	assert.Equal(t, "schema", domain.ClassSchema.String())
	assert.Equal(t, "spawn", domain.ClassSpawn.String())
	assert.Equal(t, "child-failure", domain.ClassChildFailure.String())
	assert.Equal(t, "unknown", domain.ClassUnknown.String())
}
