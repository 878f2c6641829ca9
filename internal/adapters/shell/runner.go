// Package shell provides the command runner adapter around os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/grip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command in dir and returns its stdout. On failure the
// returned error carries the command line, exit code and trimmed stderr as
// metadata.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool name comes from settings
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), commandError(err, name, args, stderr.String())
	}
	return stdout.Bytes(), nil
}

// RunInteractive executes the command with the process's own stdio attached.
// Output streams directly to the user; nothing is captured.
func (r *Runner) RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	r.logger.Info("running " + strings.Join(append([]string{name}, args...), " "))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool name comes from settings
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return commandError(err, name, args, "")
	}
	return nil
}

func commandError(err error, name string, args []string, stderr string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(append([]string{name}, args...), " "))
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if s := strings.TrimSpace(stderr); s != "" {
		wrapped = zerr.With(wrapped, "stderr", s)
	}
	return wrapped
}
