package ports

import "context"

// CommandRunner executes external tools (git, cmake, the built target).
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command in dir and returns its combined output. A
	// non-zero exit returns an error carrying the exit code and trimmed
	// stderr as metadata.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// RunInteractive executes the command with the process's own stdio
	// attached. Used for build/run pass-through.
	RunInteractive(ctx context.Context, dir, name string, args ...string) error
}
