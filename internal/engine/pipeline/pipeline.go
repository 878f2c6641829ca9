// Package pipeline implements the dependency install state machine.
package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
)

// Pipeline runs one install from manifest check to staging cleanup.
//
// The stage order is fixed: manifest guard, workspace, fetch, headers,
// libraries, descriptor patch, manifest save, cleanup. Any failure before the
// manifest save aborts the install and leaves the manifest untouched; a
// cleanup failure after the save is downgraded to a warning because the
// integration has already succeeded.
type Pipeline struct {
	manifests  ports.ManifestStore
	workspace  ports.Workspace
	fetcher    ports.SourceFetcher
	integrator ports.Integrator
	patcher    ports.DescriptorPatcher
	cleaner    ports.Cleaner
	telemetry  ports.Telemetry
	logger     ports.Logger
	platform   domain.Platform
}

// New creates a Pipeline.
func New(
	manifests ports.ManifestStore,
	workspace ports.Workspace,
	fetcher ports.SourceFetcher,
	integrator ports.Integrator,
	patcher ports.DescriptorPatcher,
	cleaner ports.Cleaner,
	telemetry ports.Telemetry,
	logger ports.Logger,
	platform domain.Platform,
) *Pipeline {
	return &Pipeline{
		manifests:  manifests,
		workspace:  workspace,
		fetcher:    fetcher,
		integrator: integrator,
		patcher:    patcher,
		cleaner:    cleaner,
		telemetry:  telemetry,
		logger:     logger,
		platform:   platform,
	}
}

// Install resolves, fetches and integrates one dependency into the project at
// root. Installing a dependency already present in the manifest is a no-op
// success reporting the recorded version.
func (p *Pipeline) Install(ctx context.Context, root, name, requestedVersion string) (*domain.InstallReport, error) {
	manifest, err := p.manifests.Load(root)
	if err != nil {
		return nil, err
	}

	desc := domain.ResolveDependency(name, requestedVersion, p.platform)
	report := &domain.InstallReport{
		Dependency:      desc.Name,
		ResolvedVersion: desc.ResolvedVersion,
	}

	// Duplicate-install guard. This holds as a retry barrier only because the
	// manifest save is strictly the last content mutation below.
	if installed, ok := manifest.Installed(name); ok {
		_, v := p.telemetry.Record(ctx, "install "+name)
		v.Cached()
		v.Complete(nil)
		report.AlreadyInstalled = true
		report.ResolvedVersion = installed
		return report, nil
	}

	layout := domain.NewLayout(root)
	staging := layout.StagingDir(desc.Name)

	err = p.stage(ctx, "prepare workspace", func(ctx context.Context) error {
		return p.workspace.Ensure(layout)
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, fmt.Sprintf("fetch %s@%s", desc.Name, desc.ResolvedVersion), func(ctx context.Context) error {
		return p.fetcher.Fetch(ctx, desc.Name, desc.ResolvedVersion, staging)
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "integrate headers", func(ctx context.Context) error {
		n, err := p.integrator.CopyHeaders(ctx, staging, layout.IncludeDir)
		report.HeaderCount = n
		return err
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "integrate libraries", func(ctx context.Context) error {
		libs, err := p.integrator.CopyLibraries(ctx, staging, layout.LibDir)
		report.Libraries = libs
		return err
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "patch "+domain.DescriptorFileName, func(ctx context.Context) error {
		_, err := p.patcher.Patch(layout.DescriptorPath, desc.Name, report.Libraries)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, "update manifest", func(ctx context.Context) error {
		manifest.Record(desc.Name, desc.ResolvedVersion)
		return p.manifests.Save(root, manifest)
	})
	if err != nil {
		return nil, err
	}

	// Past the manifest save the install has succeeded; cleanup trouble is
	// only worth a warning.
	_, v := p.telemetry.Record(ctx, "clean staging")
	if err := p.cleaner.Remove(staging); err != nil {
		report.CleanupWarning = err
		_, _ = fmt.Fprintf(v.Stderr(), "staging not removed: %s\n", err)
		p.logger.Warn(fmt.Sprintf("could not remove staging directory for %s: %s", desc.Name, err))
	}
	v.Complete(nil)

	return report, nil
}

// stage records one vertex around fn, completing it with fn's error.
func (p *Pipeline) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, v := p.telemetry.Record(ctx, name)
	err := fn(ctx)
	v.Complete(err)
	return err
}
