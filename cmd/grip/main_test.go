package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grip/internal/adapters/logger"
	"go.trai.ch/grip/internal/app"
	"go.trai.ch/grip/internal/core/domain"
)

func testComponents(logOut *bytes.Buffer) *app.Components {
	// The version command touches no ports, so the app can be wired with nil
	// adapters here.
	a := app.New(nil, nil, nil, nil, nil, nil, nil,
		logger.NewWithWriter(logOut), domain.DefaultSettings(), domain.PlatformLinux)
	return &app.Components{App: a, Logger: logger.NewWithWriter(logOut)}
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), nil, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_VersionCommand(t *testing.T) {
	var stderr, logOut bytes.Buffer

	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, error) {
		return testComponents(&logOut), nil
	})

	assert.Equal(t, 0, code)
}

func TestRun_UnknownCommand(t *testing.T) {
	var stderr, logOut bytes.Buffer

	code := run(context.Background(), []string{"frobnicate"}, &stderr, func(context.Context) (*app.Components, error) {
		return testComponents(&logOut), nil
	})

	require.Equal(t, 1, code)
	assert.Contains(t, logOut.String(), "unknown command")
}
