package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grip/internal/core/domain"
)

// NodeID is the unique identifier for the settings Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	// Settings are resolved once, from the project root the process was
	// started in; every other component receives the value.
	graft.Register(graft.Node[domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Settings, error) {
			return NewLoader().Load(".")
		},
	})
}
