package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
)

const (
	// IntegratorNodeID is the unique identifier for the integrator Graft node.
	IntegratorNodeID graft.ID = "adapter.fs.integrator"
	// CleanerNodeID is the unique identifier for the cleaner Graft node.
	CleanerNodeID graft.ID = "adapter.fs.cleaner"
)

func init() {
	graft.Register(graft.Node[ports.Integrator]{
		ID:        IntegratorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Integrator, error) {
			return NewIntegrator(domain.CurrentPlatform()), nil
		},
	})

	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Cleaner, error) {
			return NewCleaner(), nil
		},
	})
}
