// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/builddeps/internal/core/domain"
)

// Executor defines the interface for running child build processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute starts the invocation and blocks until it terminates.
	//
	// It returns an error wrapping domain.ErrSpawnFailed when the program cannot
	// be started, domain.ErrChildExited when it exits non-zero, and
	// domain.ErrChildSignaled when it is killed by a signal.
	Execute(ctx context.Context, inv domain.Invocation) error
}
