package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/grip/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Info("installing sockets")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "installing sockets")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Warn("staging not removed")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "staging not removed")
}

func TestLogger_Error_FlattensChain(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	err := zerr.Wrap(zerr.Wrap(errors.New("connection refused"), "clone failed"), "fetch failed")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "fetch failed")
	assert.Contains(t, out, "clone failed")
	assert.Contains(t, out, "connection refused")
}

func TestLogger_Error_PlainError(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Error(errors.New("plain failure"))
	assert.Contains(t, buf.String(), "plain failure")
}

func TestLogger_Error_Nil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}
