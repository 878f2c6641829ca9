package ports

import "context"

// Integrator copies a staged dependency's artifacts into the consumer tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=integrator.go -destination=mocks/mock_integrator.go -package=mocks
type Integrator interface {
	// CopyHeaders mirrors every regular file under <stagedDir>/include into
	// includeDir, preserving relative paths and overwriting existing files.
	// A staged tree without an include subtree copies zero files and is not
	// an error. Returns the number of files copied.
	CopyHeaders(ctx context.Context, stagedDir, includeDir string) (int, error)

	// CopyLibraries locates the library output directory below
	// <stagedDir>/lib by descending single-child directory chains, then
	// copies every static library file into libDir, flattening structure.
	// Returns the destination file names.
	CopyLibraries(ctx context.Context, stagedDir, libDir string) ([]string, error)
}
