package domain

import "sort"

// Manifest is the persistent dependency record of a project. It is read at
// the start of every dependency operation and mutated only by a successful
// install.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Author       string            `json:"author"`
	License      string            `json:"license"`
	Description  string            `json:"description"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewManifest creates a manifest with an initialized dependency map.
func NewManifest(name, version, author, license, description string) *Manifest {
	return &Manifest{
		Name:         name,
		Version:      version,
		Author:       author,
		License:      license,
		Description:  description,
		Dependencies: map[string]string{},
	}
}

// Installed reports whether the dependency is recorded and, if so, the
// version that was installed.
func (m *Manifest) Installed(name string) (string, bool) {
	v, ok := m.Dependencies[name]
	return v, ok
}

// Record stores the resolved version for a dependency.
func (m *Manifest) Record(name, version string) {
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	m.Dependencies[name] = version
}

// InstalledDependency is one name/version pair from the manifest.
type InstalledDependency struct {
	Name    string
	Version string
}

// SortedDependencies returns the recorded dependencies ordered by name.
func (m *Manifest) SortedDependencies() []InstalledDependency {
	deps := make([]InstalledDependency, 0, len(m.Dependencies))
	for name, version := range m.Dependencies {
		deps = append(deps, InstalledDependency{Name: name, Version: version})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps
}
