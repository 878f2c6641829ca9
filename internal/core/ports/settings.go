package ports

import "go.trai.ch/grip/internal/core/domain"

// SettingsLoader reads the optional project settings file.
type SettingsLoader interface {
	// Load reads .grip.yaml from the project root. An absent file yields the
	// defaults, not an error.
	Load(root string) (domain.Settings, error)
}
