package ports

// DescriptorPatcher appends include/link directives for a dependency to the
// project's build description.
//
//go:generate go run go.uber.org/mock/mockgen -source=patcher.go -destination=mocks/mock_patcher.go -package=mocks
type DescriptorPatcher interface {
	// Patch appends one marker-guarded directive block for the dependency.
	// When the marker is already present the file is left untouched and
	// patched is false. Patching is idempotent per dependency.
	Patch(path, dependency string, libraries []string) (patched bool, err error)
}
