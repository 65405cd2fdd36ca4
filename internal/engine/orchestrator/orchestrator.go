// Package orchestrator runs one build per dependency, in order, stopping at
// the first failure.
package orchestrator

import (
	"context"
	"strconv"
	"sync"

	"go.trai.ch/builddeps/internal/core/domain"
	"go.trai.ch/builddeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildStatus represents the progress of a single dependency build.
type BuildStatus string

const (
	// StatusPending indicates the build has not started.
	StatusPending BuildStatus = "Pending"
	// StatusRunning indicates the build process is running.
	StatusRunning BuildStatus = "Running"
	// StatusCompleted indicates the build process exited successfully.
	StatusCompleted BuildStatus = "Completed"
	// StatusFailed indicates the build could not be started or did not succeed.
	StatusFailed BuildStatus = "Failed"
)

const (
	spanBuild   = "build"
	packageAttr = "package"
)

// Orchestrator drives the per-dependency build invocations.
type Orchestrator struct {
	executor ports.Executor
	env      ports.Environment
	tracer   ports.Tracer
	logger   ports.Logger
	program  string

	mu       sync.RWMutex
	statuses []BuildStatus
}

// New creates an Orchestrator that runs program for every build.
// An empty program falls back to domain.DefaultProgram.
func New(
	executor ports.Executor,
	env ports.Environment,
	tracer ports.Tracer,
	logger ports.Logger,
	program string,
) *Orchestrator {
	if program == "" {
		program = domain.DefaultProgram
	}
	return &Orchestrator{
		executor: executor,
		env:      env,
		tracer:   tracer,
		logger:   logger,
		program:  program,
	}
}

// Program returns the build command the orchestrator runs.
func (o *Orchestrator) Program() string {
	return o.program
}

// RunAll builds deps one after another. The first failure stops the run and
// is returned; later dependencies are never attempted.
func (o *Orchestrator) RunAll(ctx context.Context, deps []domain.Dependency, args domain.BuildArgs) error {
	o.initStatuses(len(deps))

	o.logger.Info("building packages: " + domain.FormatIDs(deps))

	for i, dep := range deps {
		o.logger.Info("building package: " + strconv.Quote(dep.ID()))

		o.updateStatus(i, StatusRunning)
		if err := o.BuildOne(ctx, dep, args); err != nil {
			o.updateStatus(i, StatusFailed)
			return err
		}
		o.updateStatus(i, StatusCompleted)
	}

	o.logger.Info("done")
	return nil
}

// BuildOne runs "<program> build --package <name:version> <args...>" with
// the explicit environment and waits for it to finish.
func (o *Orchestrator) BuildOne(ctx context.Context, dep domain.Dependency, args domain.BuildArgs) error {
	ctx, span := o.tracer.Start(ctx, spanBuild, ports.WithAttribute(packageAttr, dep.ID()))
	defer span.End()

	inv := domain.NewBuildInvocation(o.program, dep, args, o.env.Environ())
	if err := o.executor.Execute(ctx, inv); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "failed to build package"), packageAttr, dep.ID())
	}

	return nil
}

// Statuses returns the status of each dependency of the last RunAll, in order.
func (o *Orchestrator) Statuses() []BuildStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]BuildStatus, len(o.statuses))
	copy(out, o.statuses)
	return out
}

func (o *Orchestrator) initStatuses(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.statuses = make([]BuildStatus, n)
	for i := range o.statuses {
		o.statuses[i] = StatusPending
	}
}

func (o *Orchestrator) updateStatus(i int, status BuildStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.statuses[i] = status
}
