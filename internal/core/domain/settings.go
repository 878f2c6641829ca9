package domain

// Default tool and registry settings. Overridable via .grip.yaml.
const (
	DefaultRegistry  = "https://github.com/grip-packages"
	DefaultGitTool   = "git"
	DefaultCMakeTool = "cmake"
)

// Settings holds user-tunable behavior loaded from the optional .grip.yaml
// file in the project root.
type Settings struct {
	// Registry is the base URL dependencies are fetched from. A dependency
	// <name> lives at <Registry>/<name>.git.
	Registry string
	// Output selects the renderer: "auto", "tui" or "plain".
	Output string
	// GitTool and CMakeTool override the executables invoked for fetching and
	// building.
	GitTool   string
	CMakeTool string
}

// DefaultSettings returns the settings used when no .grip.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		Registry:  DefaultRegistry,
		Output:    "auto",
		GitTool:   DefaultGitTool,
		CMakeTool: DefaultCMakeTool,
	}
}
