// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/builddeps/internal/adapters/config"
	_ "go.trai.ch/builddeps/internal/adapters/environment"
	_ "go.trai.ch/builddeps/internal/adapters/logger"
	_ "go.trai.ch/builddeps/internal/adapters/manifest"
	_ "go.trai.ch/builddeps/internal/adapters/shell"
	_ "go.trai.ch/builddeps/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/builddeps/internal/app"
)
