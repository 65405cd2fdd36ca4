// Package app implements the application layer for cargo-build-deps.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/builddeps/internal/core/ports"
	"go.trai.ch/builddeps/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// CargoEnvVar is set by cargo to its own path when it runs a subcommand.
const CargoEnvVar = "CARGO"

const spanRun = "build-deps"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.ManifestReader
	executor     ports.Executor
	env          ports.Environment
	tracer       ports.Tracer
	logger       ports.Logger

	state domain.RunState
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.ManifestReader,
	executor ports.Executor,
	env ports.Environment,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		executor:     executor,
		env:          env,
		tracer:       tracer,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// BuildArgs are forwarded to every build invocation.
	BuildArgs domain.BuildArgs
	// Cargo overrides the build command from the config file and environment.
	Cargo string
	// ConfigPath is the settings file. Empty selects domain.DefaultConfigPath.
	ConfigPath string
	// Verbose enables debug logging.
	Verbose bool
	// JSON switches logging to JSON records.
	JSON bool
}

// logConfigurer is implemented by loggers whose format and level can change.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// State returns the stage the last run reached.
func (a *App) State() domain.RunState {
	return a.state
}

// Run reads the manifest and lockfile, then builds each direct dependency of
// the top-level package in lockfile order.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	a.configureLogger(opts)

	a.state = domain.StateIdle
	ctx, span := a.tracer.Start(ctx, spanRun)
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			a.transition(domain.StateAborted)
		}
	}()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.DefaultConfigPath
	}
	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	program := a.resolveProgram(opts.Cargo, settings.Cargo)
	a.logger.Debug(fmt.Sprintf("using build command %q", program))

	a.transition(domain.StateLoadingManifest)
	top, err := a.reader.TopPackage(settings.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read manifest")
	}

	a.transition(domain.StateLoadingLockfile)
	deps, err := a.reader.Dependencies(settings.LockfilePath, top)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve dependencies")
	}

	a.transition(domain.StateResolved)
	span.SetAttribute("dependencies", len(deps))

	a.transition(domain.StateBuilding)
	orch := orchestrator.New(a.executor, a.env, a.tracer, a.logger, program)
	if err := orch.RunAll(ctx, deps, opts.BuildArgs); err != nil {
		return err
	}

	a.transition(domain.StateDone)
	return nil
}

// resolveProgram picks the build command: the flag, then the config file,
// then the CARGO variable, then domain.DefaultProgram.
func (a *App) resolveProgram(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	if v, ok := a.env.Lookup(CargoEnvVar); ok && v != "" {
		return v
	}
	return domain.DefaultProgram
}

func (a *App) configureLogger(opts RunOptions) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	lc.SetJSON(opts.JSON)
	lc.SetVerbose(opts.Verbose)
}

func (a *App) transition(next domain.RunState) {
	if a.state == next || a.state.IsTerminal() {
		return
	}
	a.logger.Debug(fmt.Sprintf("run state %s -> %s", a.state, next))
	a.state = next
}
