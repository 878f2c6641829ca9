package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grip/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			workspace.NodeID,
			git.NodeID,
			fs.IntegratorNodeID,
			cmake.NodeID,
			fs.CleanerNodeID,
			shell.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	ws, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
	if err != nil {
		return nil, err
	}
	integrator, err := graft.Dep[ports.Integrator](ctx)
	if err != nil {
		return nil, err
	}
	patcher, err := graft.Dep[ports.DescriptorPatcher](ctx)
	if err != nil {
		return nil, err
	}
	cleaner, err := graft.Dep[ports.Cleaner](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		manifests,
		ws,
		fetcher,
		integrator,
		patcher,
		cleaner,
		runner,
		log,
		settings,
		domain.CurrentPlatform(),
	), nil
}
