// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/droidforge/droidforge/internal/adapters/adb"
	_ "github.com/droidforge/droidforge/internal/adapters/config"
	_ "github.com/droidforge/droidforge/internal/adapters/dist"
	_ "github.com/droidforge/droidforge/internal/adapters/logger"
	_ "github.com/droidforge/droidforge/internal/adapters/p4a"
	_ "github.com/droidforge/droidforge/internal/adapters/pyenv"
	_ "github.com/droidforge/droidforge/internal/adapters/sdk"
	_ "github.com/droidforge/droidforge/internal/adapters/shell"
	_ "github.com/droidforge/droidforge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/droidforge/droidforge/internal/app"
	_ "github.com/droidforge/droidforge/internal/engine/orchestrator"
)
