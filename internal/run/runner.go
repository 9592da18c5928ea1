// Package run abstracts subprocess execution behind a small interface so
// packages that shell out (winget, CIM queries) can be tested with fakes.
package run

import (
	"context"
	"errors"
	"os/exec"
)

// Runner executes external commands.
type Runner interface {
	// CombinedOutput runs the command and returns its combined
	// stdout and stderr.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs the command and blocks until it exits, returning the
	// exit code. The error is non-nil only when the command could not
	// be started or did not produce an exit code; in that case the
	// returned code is -1.
	Run(ctx context.Context, name string, args ...string) (int, error)
}

type execRunner struct{}

// New returns a Runner backed by os/exec.
func New() Runner {
	return execRunner{}
}

func (execRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - command names and arguments come from fixed tables, not user input
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	// #nosec G204 - command names and arguments come from fixed tables, not user input
	cmd := exec.CommandContext(ctx, name, args...)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
