// Package shell provides the executor that runs child build processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/builddeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// The child shares the executor's stdin, stdout and stderr.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor attached to the process's standard streams.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the child's stdout and stderr. Used for testing.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute runs the invocation and waits for it to terminate. Cancelling ctx
// does not stop the child; operator signals reach it through the shared
// process group.
func (e *Executor) Execute(_ context.Context, inv domain.Invocation) error {
	// Resolve the executable using the child's PATH rather than ours.
	executable := inv.Program
	if !filepath.IsAbs(inv.Program) && !strings.ContainsRune(inv.Program, filepath.Separator) {
		if lp, err := lookPath(inv.Program, inv.Env); err == nil {
			executable = lp
		}
	}

	cmd := exec.Command(executable, inv.Args...) //nolint:gosec,noctx // program comes from user settings
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Program
	}
	cmd.Env = inv.Env
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	e.logger.Debug("running " + strings.Join(append([]string{inv.Program}, inv.Args...), " "))

	if err := cmd.Start(); err != nil {
		return zerr.With(errors.Join(domain.ErrSpawnFailed, err), "program", inv.Program)
	}

	if err := cmd.Wait(); err != nil {
		return exitError(err)
	}

	return nil
}

// exitError classifies a failed Wait into a non-zero exit or a signal termination.
func exitError(err error) error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return zerr.With(errors.Join(domain.ErrChildExited, err), "exit_code", -1)
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return zerr.With(zerr.Wrap(domain.ErrChildSignaled, "build process killed"), "signal", ws.Signal().String())
	}

	if code := exitErr.ExitCode(); code >= 0 {
		return zerr.With(errors.Join(domain.ErrChildExited, err), "exit_code", code)
	}

	// No exit code and no signal information, e.g. on platforms without WaitStatus.
	return errors.Join(domain.ErrChildSignaled, err)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
