package ports

import "context"

// Renderer is the abstraction for output rendering. It decouples telemetry
// collection from presentation, allowing the same vertex feed to drive either
// a rich TUI or plain sequential logs.
type Renderer interface {
	// Start initializes the renderer. For asynchronous renderers (like the
	// TUI) this launches background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to finish once its feed is drained.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error
}
