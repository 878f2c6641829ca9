// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/grip/internal/adapters/cmake"
	_ "go.trai.ch/grip/internal/adapters/config"
	_ "go.trai.ch/grip/internal/adapters/fs"
	_ "go.trai.ch/grip/internal/adapters/git"
	_ "go.trai.ch/grip/internal/adapters/logger"
	_ "go.trai.ch/grip/internal/adapters/manifest"
	_ "go.trai.ch/grip/internal/adapters/shell"
	_ "go.trai.ch/grip/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/grip/internal/app"
)
