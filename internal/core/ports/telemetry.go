package ports

import (
	"context"
	"fmt"
	"io"
)

// Telemetry records the progress of pipeline stages as vertices that a
// renderer can visualize.
type Telemetry interface {
	// Record starts recording a new vertex and attaches it to the returned
	// context so nested operations can report progress to it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)

	// Close flushes and closes the recording session. Renderers consuming the
	// session's feed observe end-of-stream afterwards.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the vertex's output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the vertex's error stream.
	Stderr() io.Writer
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because its work was already done.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Placeholder for future options; kept so signatures stay stable.
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// Progress reports deterministic "N of Total" progress for a bounded
// operation to a vertex. The total is known before the first report so a
// percentage is meaningful from the first file on.
func Progress(v Vertex, verb string, n, total int) {
	if v == nil {
		return
	}
	_, _ = fmt.Fprintf(v.Stdout(), "%s: %d of %d processed\n", verb, n, total)
}
