package config

// settingsDTO mirrors the structure of the .grip.yaml settings file.
type settingsDTO struct {
	Registry string   `yaml:"registry"`
	Output   string   `yaml:"output"`
	Tools    toolsDTO `yaml:"tools"`
}

type toolsDTO struct {
	Git   string `yaml:"git"`
	CMake string `yaml:"cmake"`
}
