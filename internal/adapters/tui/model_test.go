package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/grip/internal/adapters/telemetry"
	"go.trai.ch/grip/internal/adapters/tui"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func completedVertex(id, name string) *progrock.Vertex {
	return &progrock.Vertex{Id: id, Name: name, Completed: timestamppb.New(time.Now())}
}

func applyUpdate(m *tui.Model, update *progrock.StatusUpdate) *tui.Model {
	next, _ := m.Update(tui.MsgUpdate{Update: update})
	return next.(*tui.Model)
}

func TestModel_TracksVertexStatus(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	m = applyUpdate(m, &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "a", Name: "prepare workspace"},
		},
	})

	vertices := m.Vertices()
	require.Len(t, vertices, 1)
	assert.Equal(t, "prepare workspace", vertices[0].Name)
	assert.Equal(t, "running", vertices[0].Status)

	m = applyUpdate(m, &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			completedVertex("a", "prepare workspace"),
		},
	})

	vertices = m.Vertices()
	require.Len(t, vertices, 1, "updates for a known vertex must not duplicate it")
	assert.Equal(t, "completed", vertices[0].Status)
}

func TestModel_FailedAndCachedStatus(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	errMsg := "remote not found"
	failed := completedVertex("a", "fetch sockets@linux")
	failed.Error = &errMsg

	m = applyUpdate(m, &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			failed,
			{Id: "b", Name: "install sockets", Cached: true},
		},
	})

	vertices := m.Vertices()
	require.Len(t, vertices, 2)
	assert.Equal(t, "failed", vertices[0].Status)
	assert.Equal(t, "cached", vertices[1].Status)
}

func TestModel_AttachesLastLogLineAsDetail(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	m = applyUpdate(m, &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "a", Name: "integrate headers"},
		},
		Logs: []*progrock.VertexLog{
			{Vertex: "a", Data: []byte("headers: 1 of 3 processed\nheaders: 2 of 3 processed\n")},
		},
	})

	vertices := m.Vertices()
	require.Len(t, vertices, 1)
	assert.Equal(t, "headers: 2 of 3 processed", vertices[0].Detail)
}

func TestModel_View(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	m = applyUpdate(m, &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			completedVertex("a", "prepare workspace"),
			{Id: "b", Name: "fetch sockets@linux"},
		},
	})

	view := m.View()
	assert.Contains(t, view, "prepare workspace")
	assert.Contains(t, view, "fetch sockets@linux")
}

func TestModel_QuitsWhenFeedEnds(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	_, cmd := m.Update(tui.MsgFeedEnded{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_QuitsOnCtrlC(t *testing.T) {
	m := tui.NewModel(telemetry.NewFeed())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
