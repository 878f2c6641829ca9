package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor patcher Graft node.
const NodeID graft.ID = "adapter.patcher"

func init() {
	graft.Register(graft.Node[ports.DescriptorPatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorPatcher, error) {
			return NewPatcher(domain.CurrentPlatform()), nil
		},
	})
}
