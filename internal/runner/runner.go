// Package runner provides the command-runner capability the simulator
// adapter uses to invoke the vendor binaries. Runs are synchronous: success
// or failure is determined solely by the exit status, with no retries.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Command describes one external tool invocation.
type Command struct {
	// Exe is the path to the executable.
	Exe string
	// Args is the argument list, not including the executable itself.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the invocation for log output.
func (c Command) String() string {
	s := c.Exe
	for _, a := range c.Args {
		s += " " + a
	}

	return s
}

// Runner runs external commands to completion.
type Runner interface {
	// Run executes cmd and returns a non-nil error when the command could
	// not be started or exited non-zero.
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands with os/exec, forwarding the tool's output to the
// driver's standard streams.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Exe, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("running %s: %w", cmd.String(), err)
	}

	return nil
}

// FindPrefix locates the directory containing the vendor toolchain by
// searching PATH for the given executable name.
func FindPrefix(executable string) (string, error) {
	path, err := exec.LookPath(executable)
	if err != nil {
		return "", fmt.Errorf("locating %s on PATH: %w", executable, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	return filepath.Dir(abs), nil
}
