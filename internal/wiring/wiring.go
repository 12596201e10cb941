// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gqltag/internal/adapters/config"
	_ "go.trai.ch/gqltag/internal/adapters/fs"
	_ "go.trai.ch/gqltag/internal/adapters/graphql"
	_ "go.trai.ch/gqltag/internal/adapters/logger"
	_ "go.trai.ch/gqltag/internal/adapters/telemetry"
	_ "go.trai.ch/gqltag/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/gqltag/internal/app"
)
