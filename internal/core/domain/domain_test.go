package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/core/domain"
)

func TestPlatform_DefaultBranch(t *testing.T) {
	tests := []struct {
		platform domain.Platform
		want     string
	}{
		{domain.PlatformLinux, "linux"},
		{domain.PlatformMacOS, "macos"},
		{domain.PlatformWindows, "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.platform.DefaultBranch())
			assert.Equal(t, tt.want, tt.platform.String())
		})
	}
}

func TestPlatform_IsLibrary(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		file     string
		want     bool
	}{
		{"Linux archive", domain.PlatformLinux, "libfoo.a", true},
		{"Linux rejects lib extension", domain.PlatformLinux, "foo.lib", false},
		{"Linux rejects shared object", domain.PlatformLinux, "libfoo.so", false},
		{"Linux rejects header", domain.PlatformLinux, "foo.h", false},
		{"macOS archive", domain.PlatformMacOS, "libfoo.a", true},
		{"Windows lib", domain.PlatformWindows, "foo.lib", true},
		{"Windows archive", domain.PlatformWindows, "libfoo.a", true},
		{"Bare extension is not a library", domain.PlatformLinux, ".a", false},
		{"Extension must be a suffix", domain.PlatformLinux, "foo.a.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.platform.IsLibrary(tt.file))
		})
	}
}

func TestPlatform_SystemLibraries(t *testing.T) {
	assert.Empty(t, domain.PlatformLinux.SystemLibraries())
	assert.Empty(t, domain.PlatformMacOS.SystemLibraries())
	assert.Equal(t, []string{"ws2_32", "wsock32"}, domain.PlatformWindows.SystemLibraries())
}

func TestPlatform_ExecutableSuffix(t *testing.T) {
	assert.Equal(t, "", domain.PlatformLinux.ExecutableSuffix())
	assert.Equal(t, ".exe", domain.PlatformWindows.ExecutableSuffix())
}

func TestResolveDependency(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		platform  domain.Platform
		want      string
	}{
		{"Explicit version wins", "1.2.0", domain.PlatformLinux, "1.2.0"},
		{"Empty falls back to linux branch", "", domain.PlatformLinux, "linux"},
		{"Empty falls back to macos branch", "", domain.PlatformMacOS, "macos"},
		{"Empty falls back to windows branch", "", domain.PlatformWindows, "windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := domain.ResolveDependency("sockets", tt.requested, tt.platform)
			assert.Equal(t, "sockets", desc.Name)
			assert.Equal(t, tt.requested, desc.RequestedVersion)
			assert.Equal(t, tt.want, desc.ResolvedVersion)
		})
	}
}

func TestManifest_RecordAndInstalled(t *testing.T) {
	m := domain.NewManifest("demo", "1.0.0", "Anonymous", "MIT", "test project")

	_, ok := m.Installed("sockets")
	require.False(t, ok)

	m.Record("sockets", "linux")
	v, ok := m.Installed("sockets")
	require.True(t, ok)
	assert.Equal(t, "linux", v)
}

func TestManifest_RecordOnNilMap(t *testing.T) {
	// A manifest decoded from JSON without a dependencies key has a nil map.
	m := &domain.Manifest{Name: "demo"}
	m.Record("sockets", "1.0")

	v, ok := m.Installed("sockets")
	require.True(t, ok)
	assert.Equal(t, "1.0", v)
}

func TestManifest_SortedDependencies(t *testing.T) {
	m := domain.NewManifest("demo", "1.0.0", "", "", "")
	m.Record("zlib", "linux")
	m.Record("asio", "1.28")
	m.Record("catch2", "linux")

	deps := m.SortedDependencies()
	require.Len(t, deps, 3)
	assert.Equal(t, "asio", deps[0].Name)
	assert.Equal(t, "catch2", deps[1].Name)
	assert.Equal(t, "zlib", deps[2].Name)
	assert.Equal(t, "1.28", deps[0].Version)
}
