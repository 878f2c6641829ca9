package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Cleaner implements ports.Cleaner. Removal is best effort: fetched sources
// sometimes carry read-only files (git object files, Windows attributes), so
// permissions are relaxed before deleting.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Remove deletes the directory tree. A missing directory is a no-op. The
// returned error is downgraded to a warning by the caller once the manifest
// has been saved.
func (c *Cleaner) Remove(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	// Relax permissions first; ignore individual chmod failures, RemoveAll
	// decides what actually resists deletion.
	_ = filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // keep walking, removal below reports the real failure
		}
		if d.IsDir() {
			_ = os.Chmod(path, 0o700)
		} else {
			_ = os.Chmod(path, 0o600)
		}
		return nil
	})

	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "dir", dir)
	}
	return nil
}
