// Package linear provides a synchronous, line-oriented renderer for
// non-interactive environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

// UpdateSource is the stream of status updates the renderer drains, typically
// a telemetry.Feed.
type UpdateSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// Renderer implements ports.Renderer for CI/non-interactive sessions. It
// prints one line per vertex state change plus any vertex output,
// chronologically.
type Renderer struct {
	source UpdateSource
	out    io.Writer
	output *termenv.Output

	names    map[string]string
	reported map[string]bool
	done     chan error
}

// NewRenderer creates a Renderer draining source into out.
func NewRenderer(source UpdateSource, out io.Writer) *Renderer {
	if out == nil {
		out = os.Stderr
	}
	return &Renderer{
		source:   source,
		out:      out,
		output:   termenv.NewOutput(out, termenv.WithProfile(colorProfile())),
		names:    map[string]string{},
		reported: map[string]bool{},
		done:     make(chan error, 1),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	// Basic ANSI colors for broad CI compatibility.
	return termenv.ANSI
}

// Start launches the drain loop.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		r.done <- r.drain()
	}()
	return nil
}

// Stop is a no-op; the drain loop ends when the feed is closed.
func (r *Renderer) Stop() error {
	return nil
}

// Wait blocks until the feed is exhausted.
func (r *Renderer) Wait() error {
	return <-r.done
}

func (r *Renderer) drain() error {
	for {
		update, err := r.source.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		r.render(update)
	}
}

func (r *Renderer) render(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		r.names[v.Id] = v.Name
		switch {
		case v.Cached && !r.reported[v.Id]:
			r.reported[v.Id] = true
			symbol := r.output.String("~").Foreground(termenv.ANSIYellow).String()
			_, _ = fmt.Fprintf(r.out, "%s %s (cached)\n", symbol, v.Name)
		case v.Completed != nil && !r.reported[v.Id]:
			r.reported[v.Id] = true
			if v.Error != nil {
				symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
				_, _ = fmt.Fprintf(r.out, "%s %s: %s\n", symbol, v.Name, *v.Error)
			} else {
				symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
				_, _ = fmt.Fprintf(r.out, "%s %s\n", symbol, v.Name)
			}
		}
	}

	for _, log := range update.Logs {
		name := r.names[log.Vertex]
		for _, line := range bytes.Split(bytes.TrimRight(log.Data, "\n"), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
			_, _ = fmt.Fprintf(r.out, "%s %s\n", prefix, line)
		}
	}
}
