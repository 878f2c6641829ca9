// Package cmake patches the consumer's CMakeLists.txt with include and link
// directives for integrated dependencies.
package cmake

import (
	"os"
	"path"
	"strings"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/zerr"
)

// Patcher implements ports.DescriptorPatcher. Each dependency gets exactly
// one directive block, delimited by marker comments keyed by the dependency
// name; re-running install never duplicates a block.
type Patcher struct {
	platform domain.Platform
}

// NewPatcher creates a Patcher for the given platform.
func NewPatcher(platform domain.Platform) *Patcher {
	return &Patcher{platform: platform}
}

func beginMarker(dependency string) string { return "# >>> grip: " + dependency + " >>>" }
func endMarker(dependency string) string   { return "# <<< grip: " + dependency + " <<<" }

// Patch appends the directive block for the dependency unless its begin
// marker is already present anywhere in the file.
func (p *Patcher) Patch(descriptorPath, dependency string, libraries []string) (bool, error) {
	data, err := os.ReadFile(descriptorPath) //nolint:gosec // path derives from the project root
	if err != nil {
		if os.IsNotExist(err) {
			return false, zerr.With(domain.ErrDescriptorMissing, "path", descriptorPath)
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read build description"), "path", descriptorPath)
	}

	if strings.Contains(string(data), beginMarker(dependency)) {
		return false, nil
	}

	block := p.directiveBlock(dependency, libraries)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		block = "\n" + block
	}

	f, err := os.OpenFile(descriptorPath, os.O_WRONLY|os.O_APPEND, 0) //nolint:gosec // path derives from the project root
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open build description"), "path", descriptorPath)
	}
	defer f.Close() //nolint:errcheck // write errors are checked below

	if _, err := f.WriteString(block); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to append to build description"), "path", descriptorPath)
	}
	return true, nil
}

// directiveBlock renders the marker-guarded block: the shared include
// directory, one link directive per copied library and the platform's system
// libraries. Paths use forward slashes; CMake expects them on every platform.
func (p *Patcher) directiveBlock(dependency string, libraries []string) string {
	var b strings.Builder
	b.WriteString("\n" + beginMarker(dependency) + "\n")
	b.WriteString("include_directories(${CMAKE_CURRENT_SOURCE_DIR}/" +
		path.Join(domain.ModulesDirName, "include") + ")\n")

	for _, lib := range libraries {
		b.WriteString("target_link_libraries(${PROJECT_NAME} ${CMAKE_CURRENT_SOURCE_DIR}/" +
			path.Join(domain.ModulesDirName, "lib", lib) + ")\n")
	}

	if sys := p.platform.SystemLibraries(); len(sys) > 0 {
		b.WriteString("target_link_libraries(${PROJECT_NAME} " + strings.Join(sys, " ") + ")\n")
	}

	b.WriteString(endMarker(dependency) + "\n")
	return b.String()
}
