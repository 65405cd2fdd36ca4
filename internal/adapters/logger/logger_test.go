package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/builddeps/internal/adapters/logger"
	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("building packages: [\"bar:1.0.0\"]") },
			goldenName: "info_basic",
		},
		{
			name:       "info multiline",
			log:        func(lg *logger.Logger) { lg.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("lockfile lists package more than once") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug hidden by default",
			log:        func(lg *logger.Logger) { lg.Debug("state loading-manifest") },
			goldenName: "debug_filtered",
		},
		{
			name:       "debug in verbose mode",
			verbose:    true,
			log:        func(lg *logger.Logger) { lg.Debug("state loading-manifest") },
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_SetVerbose_Toggle(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("first")
	lg.SetVerbose(false)
	lg.Debug("second")

	assert.Contains(t, buf.String(), "first")
	assert.NotContains(t, buf.String(), "second")
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("toml: expected character =\n  line 3"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("permission denied"),
					"failed to read lockfile",
				),
				"failed to resolve dependencies",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "metadata on main error",
			err: func() error {
				err := zerr.Wrap(errors.New("connection refused"), "registry unavailable")
				err = zerr.With(err, "registry", "crates.io")
				return zerr.With(err, "attempts", 3)
			}(),
			goldenName: "error_metadata_main",
		},
		{
			name: "child exit status",
			err: func() error {
				exitErr := zerr.With(errors.Join(domain.ErrChildExited, errors.New("exit status 101")), "exit_code", 101)
				return zerr.With(zerr.Wrap(exitErr, "failed to build package"), "package", "bar:1.0.0")
			}(),
			goldenName: "error_child_exit",
		},
		{
			name: "schema error",
			err: func() error {
				err := zerr.With(zerr.Wrap(domain.ErrTopPackageNotFound, "invalid lockfile"), "package", "foo")
				return zerr.With(err, "path", "Cargo.lock")
			}(),
			goldenName: "error_schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("no such file or directory")
	outer := fmt.Errorf("open Cargo.toml: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: open Cargo.toml: no such file or directory\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("exit status 1"), "failed to build package"), "package", "bar:1.0.0")
	lg.Error(err)

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"error"`)
	assert.Contains(t, output, "failed to build package")
	assert.Contains(t, output, "bar:1.0.0")
	assert.NotContains(t, output, "✗")
}

func TestLogger_SetJSON_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	lg.Debug("state resolved")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"msg":"state resolved"`)
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	prettyAgain := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")
	assert.Contains(t, prettyAgain, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info(fmt.Sprintf("info %d", i))
			lg.Warn(fmt.Sprintf("warn %d", i))
			lg.Error(fmt.Errorf("error %d", i))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		lg.SetJSON(false)
		lg.SetVerbose(true)
	}()
	wg.Wait()

	assert.NotEmpty(t, buf.String())
}
