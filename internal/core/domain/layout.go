package domain

import "path/filepath"

// On-disk names inside a grip project. Every path is derived from the project
// root passed in by the caller; nothing reads the process working directory.
const (
	// ManifestFileName is the manifest file in the project root.
	ManifestFileName = "grip.json"
	// ModulesDirName holds integrated artifacts and per-dependency staging.
	ModulesDirName = "grip_modules"
	// DescriptorFileName is the build description patched per dependency.
	DescriptorFileName = "CMakeLists.txt"
	// BuildDirName is the CMake binary directory used by build/run.
	BuildDirName = "build"

	// MaxLibDescent bounds the single-child directory descent used to locate
	// a dependency's library output folder. Deeper nesting is treated as a
	// malformed dependency tree.
	MaxLibDescent = 8
)

// Layout holds every path the install pipeline touches, precomputed from the
// project root.
type Layout struct {
	Root           string
	ManifestPath   string
	ModulesDir     string
	IncludeDir     string
	LibDir         string
	DescriptorPath string
	BuildDir       string
}

// NewLayout computes the project layout for the given root. It is pure; no
// directories are created.
func NewLayout(root string) Layout {
	modules := filepath.Join(root, ModulesDirName)
	return Layout{
		Root:           root,
		ManifestPath:   filepath.Join(root, ManifestFileName),
		ModulesDir:     modules,
		IncludeDir:     filepath.Join(modules, "include"),
		LibDir:         filepath.Join(modules, "lib"),
		DescriptorPath: filepath.Join(root, DescriptorFileName),
		BuildDir:       filepath.Join(root, BuildDirName),
	}
}

// StagingDir returns the staging directory for one dependency. It lives under
// the modules dir for the duration of a single install, or across a crashed
// one until the next install resumes it.
func (l Layout) StagingDir(dependency string) string {
	return filepath.Join(l.ModulesDir, dependency)
}

// RunTarget returns the path of the executable produced by the build tool for
// the named project.
func (l Layout) RunTarget(name string, platform Platform) string {
	return filepath.Join(l.BuildDir, name+platform.ExecutableSuffix())
}
