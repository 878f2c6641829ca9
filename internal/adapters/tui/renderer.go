package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer implements ports.Renderer by running the Bubble Tea program in the
// background.
type Renderer struct {
	model   *Model
	opts    []tea.ProgramOption
	program *tea.Program
	done    chan error
}

// NewRenderer creates a Renderer for the given model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		model: model,
		opts:  opts,
		done:  make(chan error, 1),
	}
}

// Start launches the TUI program.
func (r *Renderer) Start(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.opts...)
	r.program = tea.NewProgram(r.model, opts...)

	go func() {
		_, err := r.program.Run()
		r.done <- err
	}()
	return nil
}

// Stop asks the program to quit. Normally the feed's end-of-stream already
// did; this is the backstop for error paths.
func (r *Renderer) Stop() error {
	if r.program != nil {
		r.program.Quit()
	}
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.done
}
