package app

import "go.trai.ch/grip/internal/core/ports"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}
