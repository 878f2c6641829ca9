// Package manifest persists the project manifest as JSON.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore backed by grip.json in the project root.
type Store struct{}

// NewStore creates a new manifest Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and decodes the manifest. The dependency map is never nil after
// a successful load.
func (s *Store) Load(root string) (*domain.Manifest, error) {
	path := domain.NewLayout(root).ManifestPath

	data, err := os.ReadFile(path) //nolint:gosec // path derives from the caller's project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestMissing, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestInvalid, err), "path", path)
	}

	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	return &m, nil
}

// Save writes the manifest atomically: marshal to a temp file next to the
// target, then rename over it. A reader racing a save never observes a
// half-written manifest.
func (s *Store) Save(root string, m *domain.Manifest) error {
	path := domain.NewLayout(root).ManifestPath

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	//nolint:gosec // manifest is project metadata, not a secret
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, "failed to replace manifest"), "path", path)
	}
	return nil
}
