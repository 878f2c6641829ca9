// Package telemetry records pipeline progress via progrock and exposes the
// update stream to renderers.
package telemetry

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// Feed is a progrock writer whose updates can be read back by a renderer.
// The recorder writes status updates into it; the TUI or plain renderer
// drains them with Read until Close signals end-of-stream.
type Feed struct {
	mu      sync.Mutex
	closed  bool
	updates chan *progrock.StatusUpdate
}

// NewFeed creates a Feed with a buffered update stream.
func NewFeed() *Feed {
	return &Feed{
		updates: make(chan *progrock.StatusUpdate, 128),
	}
}

// WriteStatus implements progrock.Writer. Updates written after Close are
// dropped; progrock may still flush in the background while we shut down.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	select {
	case f.updates <- update:
	default:
		// Drop rather than block when the renderer falls behind; an install
		// records a handful of vertices, so the buffer never fills in
		// practice.
	}
	return nil
}

// Close ends the stream. Readers observe io.EOF after draining buffered
// updates. Closing twice is safe.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		f.closed = true
		close(f.updates)
	}
	return nil
}

// Read returns the next status update, blocking until one is available. It
// returns io.EOF once the feed is closed and drained.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-f.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}
