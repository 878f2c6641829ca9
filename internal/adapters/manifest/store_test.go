package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/adapters/manifest"
	"go.trai.ch/grip/internal/core/domain"
)

func TestStore_Load_Missing(t *testing.T) {
	store := manifest.NewStore()

	_, err := store.Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestMissing)
}

func TestStore_Load_Invalid(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte("{not json"), 0o644))

	store := manifest.NewStore()
	_, err := store.Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestInvalid)
}

func TestStore_Load_NormalizesNilDependencies(t *testing.T) {
	root := t.TempDir()
	content := `{"name": "demo", "version": "1.0.0"}`
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte(content), 0o644))

	store := manifest.NewStore()
	m, err := store.Load(root)
	require.NoError(t, err)
	require.NotNil(t, m.Dependencies)

	// Record must not panic on a manifest without a dependencies key.
	m.Record("sockets", "linux")
	v, ok := m.Installed("sockets")
	require.True(t, ok)
	assert.Equal(t, "linux", v)
}

func TestStore_Roundtrip(t *testing.T) {
	root := t.TempDir()
	store := manifest.NewStore()

	m := domain.NewManifest("demo", "1.0.0", "Anonymous", "MIT", "a test project")
	m.Record("sockets", "linux")
	m.Record("json", "3.11.2")

	require.NoError(t, store.Save(root, m))

	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestStore_Save_FileShape(t *testing.T) {
	root := t.TempDir()
	store := manifest.NewStore()

	require.NoError(t, store.Save(root, domain.NewManifest("demo", "1.0.0", "", "", "")))

	data, err := os.ReadFile(filepath.Join(root, domain.ManifestFileName))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasSuffix(content, "\n"), "manifest should end with a newline")
	assert.Contains(t, content, "  \"name\": \"demo\"", "manifest should be indented")

	// The temp file used for the atomic replace must not survive.
	_, err = os.Stat(filepath.Join(root, domain.ManifestFileName+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Save_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	store := manifest.NewStore()

	require.NoError(t, store.Save(root, domain.NewManifest("old", "0.1.0", "", "", "")))
	require.NoError(t, store.Save(root, domain.NewManifest("new", "0.2.0", "", "", "")))

	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.Name)
	assert.Equal(t, "0.2.0", loaded.Version)
}
