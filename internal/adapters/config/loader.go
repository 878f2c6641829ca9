// Package config loads the optional project settings file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsFileName is the optional settings file in the project root.
const SettingsFileName = ".grip.yaml"

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new settings Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads .grip.yaml from the project root. An absent file yields the
// defaults; set fields override defaults individually.
func (l *Loader) Load(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, SettingsFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path derives from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path)
	}

	var dto settingsDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse settings"), "path", path)
	}

	if dto.Registry != "" {
		settings.Registry = dto.Registry
	}
	if dto.Output != "" {
		settings.Output = dto.Output
	}
	if dto.Tools.Git != "" {
		settings.GitTool = dto.Tools.Git
	}
	if dto.Tools.CMake != "" {
		settings.CMakeTool = dto.Tools.CMake
	}
	return settings, nil
}
