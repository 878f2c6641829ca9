package ports

import "go.trai.ch/grip/internal/core/domain"

// Workspace creates the on-disk project layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Ensure creates the modules, include and lib directories. Creating an
	// already-existing directory is not an error.
	Ensure(layout domain.Layout) error
}
