package ports

import "context"

// SourceFetcher retrieves a dependency's source tree at a resolved version.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SourceFetcher interface {
	// Fetch materializes the dependency at dest. When dest does not exist a
	// full clone is performed; when it exists (e.g. from a crashed previous
	// install) the checkout is updated in place, which makes installs
	// resumable.
	Fetch(ctx context.Context, name, version, dest string) error
}
