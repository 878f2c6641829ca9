// Package workspace creates the on-disk project layout.
package workspace

import (
	"errors"
	"os"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace using os.MkdirAll.
type Workspace struct{}

// New creates a new Workspace.
func New() *Workspace {
	return &Workspace{}
}

// Ensure creates the modules, include and lib directories. MkdirAll makes the
// operation idempotent; any failure aborts the install before a fetch begins.
func (w *Workspace) Ensure(layout domain.Layout) error {
	for _, dir := range []string{layout.ModulesDir, layout.IncludeDir, layout.LibDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(errors.Join(domain.ErrWorkspaceIO, err), "dir", dir)
		}
	}
	return nil
}
