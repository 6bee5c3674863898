package vcsmx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vcsmx-driver/internal/runner"
)

// fakeRunner records every invocation instead of running vendor binaries.
// Failures are injected per executable basename.
type fakeRunner struct {
	commands []runner.Command
	fail     map[string]error
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command) error {
	f.commands = append(f.commands, cmd)

	if err := f.fail[filepath.Base(cmd.Exe)]; err != nil {
		return err
	}

	return nil
}

func (f *fakeRunner) exes() []string {
	var out []string
	for _, cmd := range f.commands {
		out = append(out, filepath.Base(cmd.Exe))
	}

	return out
}

const testPrefix = "/opt/synopsys/bin"

// newTestInterface builds an adapter wired to a fake runner, with output and
// setup file under a per-test temp directory.
func newTestInterface(t *testing.T, fake *fakeRunner) *Interface {
	t.Helper()

	out := t.TempDir()

	i, err := New(Config{
		Prefix:     testPrefix,
		OutputPath: out,
		SetupPath:  filepath.Join(out, SetupFileName),
		Runner:     fake,
	})
	require.NoError(t, err)

	return i
}
