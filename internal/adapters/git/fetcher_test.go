package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/adapters/git"
	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.Registry = "https://example.com/packages"
	return s
}

func TestFetcher_Fetch_Clone(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	dest := filepath.Join(t.TempDir(), "sockets")
	runner.EXPECT().
		Run(gomock.Any(), "", "git",
			"clone", "--branch", "linux", "https://example.com/packages/sockets.git", dest).
		Return([]byte("Cloning into 'sockets'...\n"), nil)

	f := git.NewFetcher(runner, testSettings())
	require.NoError(t, f.Fetch(context.Background(), "sockets", "linux", dest))
}

func TestFetcher_Fetch_UpdateExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	// Simulate a staging directory left behind by a crashed install.
	dest := filepath.Join(t.TempDir(), "sockets")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), "", "git", "-C", dest, "fetch", "origin").
			Return(nil, nil),
		runner.EXPECT().
			Run(gomock.Any(), "", "git", "-C", dest, "checkout", "1.2.0").
			Return(nil, nil),
		runner.EXPECT().
			Run(gomock.Any(), "", "git", "-C", dest, "pull", "origin", "1.2.0").
			Return(nil, nil),
	)

	f := git.NewFetcher(runner, testSettings())
	require.NoError(t, f.Fetch(context.Background(), "sockets", "1.2.0", dest))
}

func TestFetcher_Fetch_CloneFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	dest := filepath.Join(t.TempDir(), "sockets")
	runner.EXPECT().
		Run(gomock.Any(), "", "git",
			"clone", "--branch", "linux", "https://example.com/packages/sockets.git", dest).
		Return(nil, errors.New("remote: repository not found"))

	f := git.NewFetcher(runner, testSettings())
	err := f.Fetch(context.Background(), "sockets", "linux", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_Fetch_UpdateStopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	dest := filepath.Join(t.TempDir(), "sockets")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	runner.EXPECT().
		Run(gomock.Any(), "", "git", "-C", dest, "fetch", "origin").
		Return(nil, errors.New("network unreachable"))
	// Checkout and pull must not run after the fetch step failed.

	f := git.NewFetcher(runner, testSettings())
	err := f.Fetch(context.Background(), "sockets", "linux", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_UsesConfiguredGitTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	settings := testSettings()
	settings.GitTool = "/opt/git/bin/git"

	dest := filepath.Join(t.TempDir(), "sockets")
	runner.EXPECT().
		Run(gomock.Any(), "", "/opt/git/bin/git",
			"clone", "--branch", "linux", "https://example.com/packages/sockets.git", dest).
		Return(nil, nil)

	f := git.NewFetcher(runner, settings)
	require.NoError(t, f.Fetch(context.Background(), "sockets", "linux", dest))
}
