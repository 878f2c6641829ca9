package domain

import (
	"runtime"
	"strings"
)

// Platform identifies the host OS family. It is resolved once at startup and
// injected into every component that needs platform-specific behavior, rather
// than having each component branch on runtime.GOOS itself.
type Platform int

const (
	// PlatformLinux covers Linux and any OS family we don't recognize.
	PlatformLinux Platform = iota
	// PlatformMacOS covers darwin hosts.
	PlatformMacOS
	// PlatformWindows covers windows hosts.
	PlatformWindows
)

// CurrentPlatform resolves the platform from runtime.GOOS.
// Unknown OS families fall back to Linux behavior.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// String returns the lowercase platform name.
func (p Platform) String() string {
	switch p {
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	default:
		return "linux"
	}
}

// DefaultBranch returns the branch fetched when the user requests no version.
// Package repositories keep one branch per OS family.
func (p Platform) DefaultBranch() string {
	return p.String()
}

// LibraryExtensions returns the file extensions recognized as static
// libraries on this platform.
func (p Platform) LibraryExtensions() []string {
	if p == PlatformWindows {
		return []string{".lib", ".a"}
	}
	return []string{".a"}
}

// IsLibrary reports whether the file name carries a static library extension
// for this platform.
func (p Platform) IsLibrary(name string) bool {
	for _, ext := range p.LibraryExtensions() {
		if len(name) > len(ext) && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// SystemLibraries returns link libraries that every consumer on this platform
// needs in addition to the fetched artifacts. Only Windows requires any
// (the Winsock pair).
func (p Platform) SystemLibraries() []string {
	if p == PlatformWindows {
		return []string{"ws2_32", "wsock32"}
	}
	return nil
}

// ExecutableSuffix returns the suffix of built executables.
func (p Platform) ExecutableSuffix() string {
	if p == PlatformWindows {
		return ".exe"
	}
	return ""
}
