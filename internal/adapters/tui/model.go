// Package tui provides a terminal user interface for visualizing install
// progress.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// UpdateSource is the stream of progrock updates driving the model,
// typically a telemetry.Feed.
type UpdateSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// VertexState represents one pipeline stage in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string
	Detail string // last output line, e.g. "headers: 3 of 12 processed"
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	cached    lipgloss.Style
	detail    lipgloss.Style
}

// Model is the Bubble Tea model, tracking vertices as updates stream in.
type Model struct {
	source   UpdateSource
	vertices []VertexState
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a TUI model reading from the given source.
func NewModel(source UpdateSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		source:  source,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// MsgUpdate wraps the raw update from progrock.
type MsgUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgFeedEnded is sent when the update stream has ended.
type MsgFeedEnded struct{}

// waitForUpdate returns a command that reads the next update from the source.
func waitForUpdate(source UpdateSource) tea.Cmd {
	return func() tea.Msg {
		update, err := source.Read()
		if err != nil {
			// EOF and any other error both end the stream.
			return MsgFeedEnded{}
		}
		return MsgUpdate{Update: update}
	}
}

// Init starts reading from the source.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForUpdate(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgUpdate:
		m.apply(msg.Update)
		return m, waitForUpdate(m.source)
	case MsgFeedEnded:
		return m, tea.Quit
	}
	return m, nil
}

// apply folds a status update into the vertex list.
func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		m.updateOrAddVertex(v)
	}
	for _, log := range update.Logs {
		m.attachDetail(log)
	}
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	for i, existing := range m.vertices {
		if existing.ID == v.Id {
			m.vertices[i].Status = vertexStatus(v)
			return
		}
	}
	m.vertices = append(m.vertices, VertexState{
		ID:     v.Id,
		Name:   v.Name,
		Status: vertexStatus(v),
	})
}

func vertexStatus(v *progrock.Vertex) string {
	switch {
	case v.Cached:
		return statusCached
	case v.Completed != nil && v.Error != nil:
		return statusFailed
	case v.Completed != nil:
		return statusCompleted
	default:
		return statusRunning
	}
}

func (m *Model) attachDetail(log *progrock.VertexLog) {
	lines := strings.Split(strings.TrimRight(string(log.Data), "\n"), "\n")
	last := lines[len(lines)-1]
	if last == "" {
		return
	}
	for i := range m.vertices {
		if m.vertices[i].ID == log.Vertex {
			m.vertices[i].Detail = last
			return
		}
	}
}

// Vertices exposes the tracked vertex states. Used by tests.
func (m *Model) Vertices() []VertexState {
	return m.vertices
}

// View renders the vertex list.
func (m *Model) View() string {
	var s strings.Builder

	for _, v := range m.vertices {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		case statusCached:
			icon = "~"
			style = m.styles.cached
		default:
			icon = m.spinner.View()
			style = m.styles.running
		}

		line := fmt.Sprintf("%s %s", style.Render(icon), v.Name)
		if v.Status == statusRunning && v.Detail != "" {
			line += "  " + m.styles.detail.Render(v.Detail)
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}
