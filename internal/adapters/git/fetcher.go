// Package git fetches dependency sources through the git CLI.
package git

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.SourceFetcher by shelling out to git. A dependency
// <name> is expected at <registry>/<name>.git.
type Fetcher struct {
	runner   ports.CommandRunner
	registry string
	git      string
}

// NewFetcher creates a new Fetcher using the registry and git executable from
// the settings.
func NewFetcher(runner ports.CommandRunner, settings domain.Settings) *Fetcher {
	return &Fetcher{
		runner:   runner,
		registry: settings.Registry,
		git:      settings.GitTool,
	}
}

// Fetch materializes the dependency source at dest.
//
// Two states drive the behavior: when dest is absent a full clone of the
// resolved version is performed; when dest already exists (typically left by
// a previous install that crashed between fetch and cleanup) the checkout is
// brought up to date in place. This makes install resumable without manual
// cleanup.
func (f *Fetcher) Fetch(ctx context.Context, name, version, dest string) error {
	url := f.registry + "/" + name + ".git"

	var steps [][]string
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		steps = [][]string{
			{"clone", "--branch", version, url, dest},
		}
	} else {
		steps = [][]string{
			{"-C", dest, "fetch", "origin"},
			{"-C", dest, "checkout", version},
			{"-C", dest, "pull", "origin", version},
		}
	}

	v := ports.VertexFromContext(ctx)
	for _, args := range steps {
		out, err := f.runner.Run(ctx, "", f.git, args...)
		if v != nil {
			_, _ = v.Stdout().Write(out)
		}
		if err != nil {
			// Network failures, unknown revisions and unknown dependency
			// names all surface here. No retries; the user re-runs install.
			fetchErr := zerr.With(errors.Join(domain.ErrFetchFailed, err), "dependency", name)
			return zerr.With(fetchErr, "version", version)
		}
	}
	return nil
}
