// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/grip/internal/core/domain"

// ManifestStore loads and persists the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest from the project root. It returns
	// domain.ErrManifestMissing when no manifest file exists.
	Load(root string) (*domain.Manifest, error)

	// Save persists the manifest atomically. A failed save must never leave a
	// corrupted manifest behind.
	Save(root string, m *domain.Manifest) error
}
