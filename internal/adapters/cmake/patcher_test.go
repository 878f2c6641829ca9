package cmake_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/adapters/cmake"
	"go.trai.ch/grip/internal/core/domain"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DescriptorFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const baseDescriptor = `cmake_minimum_required(VERSION 3.16)
project(demo VERSION 1.0.0)
add_executable(${PROJECT_NAME} src/main.cpp)
`

func TestPatcher_Patch_AppendsBlock(t *testing.T) {
	path := writeDescriptor(t, baseDescriptor)

	p := cmake.NewPatcher(domain.PlatformLinux)
	patched, err := p.Patch(path, "sockets", []string{"libsockets.a"})
	require.NoError(t, err)
	assert.True(t, patched)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(content), baseDescriptor), "original content must be preserved")
	assert.Contains(t, string(content), "# >>> grip: sockets >>>")
	assert.Contains(t, string(content), "# <<< grip: sockets <<<")
	assert.Contains(t, string(content),
		"include_directories(${CMAKE_CURRENT_SOURCE_DIR}/grip_modules/include)")
	assert.Contains(t, string(content),
		"target_link_libraries(${PROJECT_NAME} ${CMAKE_CURRENT_SOURCE_DIR}/grip_modules/lib/libsockets.a)")
}

func TestPatcher_Patch_Idempotent(t *testing.T) {
	path := writeDescriptor(t, baseDescriptor)

	p := cmake.NewPatcher(domain.PlatformLinux)

	patched, err := p.Patch(path, "sockets", []string{"libsockets.a"})
	require.NoError(t, err)
	require.True(t, patched)

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	for range 3 {
		patched, err = p.Patch(path, "sockets", []string{"libsockets.a"})
		require.NoError(t, err)
		assert.False(t, patched)
	}

	final, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(after), string(final), "repeated patching must not duplicate the block")
	assert.Equal(t, 1, strings.Count(string(final), "# >>> grip: sockets >>>"))
}

func TestPatcher_Patch_SeparateBlocksPerDependency(t *testing.T) {
	path := writeDescriptor(t, baseDescriptor)

	p := cmake.NewPatcher(domain.PlatformLinux)

	_, err := p.Patch(path, "sockets", []string{"libsockets.a"})
	require.NoError(t, err)
	patched, err := p.Patch(path, "json", nil)
	require.NoError(t, err)
	assert.True(t, patched)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# >>> grip: sockets >>>")
	assert.Contains(t, string(content), "# >>> grip: json >>>")
}

func TestPatcher_Patch_MissingDescriptor(t *testing.T) {
	p := cmake.NewPatcher(domain.PlatformLinux)

	_, err := p.Patch(filepath.Join(t.TempDir(), domain.DescriptorFileName), "sockets", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDescriptorMissing)
}

func TestPatcher_Patch_NoTrailingNewline(t *testing.T) {
	path := writeDescriptor(t, strings.TrimRight(baseDescriptor, "\n"))

	p := cmake.NewPatcher(domain.PlatformLinux)
	patched, err := p.Patch(path, "sockets", nil)
	require.NoError(t, err)
	require.True(t, patched)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "src/main.cpp)\n")
	assert.NotContains(t, string(content), ")# >>>", "block must start on its own line")
}

func TestPatcher_Patch_WindowsSystemLibraries(t *testing.T) {
	path := writeDescriptor(t, baseDescriptor)

	p := cmake.NewPatcher(domain.PlatformWindows)
	_, err := p.Patch(path, "sockets", []string{"sockets.lib"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "target_link_libraries(${PROJECT_NAME} ws2_32 wsock32)")
}

func TestPatcher_Patch_LinuxOmitsSystemLibraries(t *testing.T) {
	path := writeDescriptor(t, baseDescriptor)

	p := cmake.NewPatcher(domain.PlatformLinux)
	_, err := p.Patch(path, "sockets", []string{"libsockets.a"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "ws2_32")
}
