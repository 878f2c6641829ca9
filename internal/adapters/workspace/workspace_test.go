package workspace_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/adapters/workspace"
	"go.trai.ch/grip/internal/core/domain"
)

func TestWorkspace_Ensure(t *testing.T) {
	root := t.TempDir()
	layout := domain.NewLayout(root)

	w := workspace.New()
	require.NoError(t, w.Ensure(layout))

	for _, dir := range []string{layout.ModulesDir, layout.IncludeDir, layout.LibDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected %s to exist", dir)
		assert.True(t, info.IsDir())
	}
}

func TestWorkspace_Ensure_Idempotent(t *testing.T) {
	root := t.TempDir()
	layout := domain.NewLayout(root)

	w := workspace.New()
	require.NoError(t, w.Ensure(layout))
	require.NoError(t, w.Ensure(layout))
}
