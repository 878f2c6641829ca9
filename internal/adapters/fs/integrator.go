package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Integrator implements ports.Integrator: it merges a staged dependency's
// headers and static libraries into the consumer tree.
type Integrator struct {
	platform domain.Platform
}

// NewIntegrator creates an Integrator for the given platform.
func NewIntegrator(platform domain.Platform) *Integrator {
	return &Integrator{platform: platform}
}

// CopyHeaders mirrors <stagedDir>/include into includeDir. The walk is
// two-pass: enumerate first so progress is reported against a known total,
// then copy. A missing include subtree copies zero files and is not an error.
func (i *Integrator) CopyHeaders(ctx context.Context, stagedDir, includeDir string) (int, error) {
	src := filepath.Join(stagedDir, "include")
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, zerr.With(errors.Join(domain.ErrIntegrationFailed, err), "path", src)
	}

	files, err := enumerateFiles(src)
	if err != nil {
		return 0, errors.Join(domain.ErrIntegrationFailed, err)
	}

	v := ports.VertexFromContext(ctx)
	for n, file := range files {
		rel, err := filepath.Rel(src, file)
		if err != nil {
			return n, zerr.With(errors.Join(domain.ErrIntegrationFailed, err), "path", file)
		}
		if err := copyFile(file, filepath.Join(includeDir, rel)); err != nil {
			// Files copied so far stay in place; headers are safe to
			// overwrite on retry.
			return n, errors.Join(domain.ErrIntegrationFailed, err)
		}
		ports.Progress(v, "headers", n+1, len(files))
	}
	return len(files), nil
}

// CopyLibraries copies static libraries below <stagedDir>/lib into libDir,
// flattened. Dependencies often nest their real output folder below one or
// more wrapper directories (per-platform or per-configuration), so the
// search descends single-child directory chains first, bounded by
// domain.MaxLibDescent. Name collisions across staged subfolders silently
// overwrite.
func (i *Integrator) CopyLibraries(ctx context.Context, stagedDir, libDir string) ([]string, error) {
	root := filepath.Join(stagedDir, "lib")
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrIntegrationFailed, err), "path", root)
	}

	outputDir, err := descendSingleChild(root)
	if err != nil {
		return nil, err
	}

	files, err := enumerateFiles(outputDir)
	if err != nil {
		return nil, errors.Join(domain.ErrIntegrationFailed, err)
	}

	var libs []string
	for _, file := range files {
		if i.platform.IsLibrary(filepath.Base(file)) {
			libs = append(libs, file)
		}
	}

	v := ports.VertexFromContext(ctx)
	copied := make([]string, 0, len(libs))
	for n, file := range libs {
		name := filepath.Base(file)
		if err := copyFile(file, filepath.Join(libDir, name)); err != nil {
			return copied, errors.Join(domain.ErrIntegrationFailed, err)
		}
		copied = append(copied, name)
		ports.Progress(v, "libraries", n+1, len(libs))
	}
	return copied, nil
}

// descendSingleChild follows directory chains with exactly one entry, at most
// domain.MaxLibDescent levels deep. The bound keeps malformed dependency
// trees from turning the search into an unbounded loop.
func descendSingleChild(dir string) (string, error) {
	for depth := 0; ; depth++ {
		if depth > domain.MaxLibDescent {
			return "", zerr.With(errors.Join(domain.ErrIntegrationFailed, domain.ErrLibTreeTooDeep), "path", dir)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", zerr.With(errors.Join(domain.ErrIntegrationFailed, err), "path", dir)
		}
		if len(entries) != 1 || !entries[0].IsDir() {
			return dir, nil
		}
		dir = filepath.Join(dir, entries[0].Name())
	}
}

// enumerateFiles lists every regular file under root, recursively, in walk
// order.
func enumerateFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk tree"), "path", root)
	}
	return files, nil
}
