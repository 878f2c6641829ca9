package domain

// Descriptor describes one dependency for the duration of a single install.
type Descriptor struct {
	Name             string
	RequestedVersion string
	ResolvedVersion  string
}

// ResolveDependency applies the version resolution policy: an explicitly
// requested version is used verbatim, otherwise the platform's default branch
// is taken. ResolvedVersion is never empty.
func ResolveDependency(name, requested string, platform Platform) Descriptor {
	resolved := requested
	if resolved == "" {
		resolved = platform.DefaultBranch()
	}
	return Descriptor{
		Name:             name,
		RequestedVersion: requested,
		ResolvedVersion:  resolved,
	}
}
