package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/minish/core/logger"
	"github.com/stretchr/testify/require"
)

// fakeLauncher records launches instead of starting processes.
type fakeLauncher struct {
	calls   []CommandLine
	outcome Outcome
}

func (f *fakeLauncher) Launch(argv CommandLine) Outcome {
	f.calls = append(f.calls, argv)
	return f.outcome
}

type launcherFunc func(argv CommandLine) Outcome

func (f launcherFunc) Launch(argv CommandLine) Outcome {
	return f(argv)
}

type testShell struct {
	*Shell
	launcher *fakeLauncher
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	prompts  *bytes.Buffer
	events   []*logger.LogEntry
}

func newTestShell(t *testing.T, input string) *testShell {
	t.Helper()

	ts := &testShell{
		launcher: &fakeLauncher{},
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		prompts:  &bytes.Buffer{},
	}

	events := &logger.Logger{
		Record: func(le *logger.LogEntry) error {
			ts.events = append(ts.events, le)
			return nil
		},
	}

	ts.Shell = NewShell(NewPlainReader(strings.NewReader(input), ts.prompts), ts.launcher)
	ts.Stdout = ts.stdout
	ts.Stderr = ts.stderr
	ts.Logger = events.Sessionless()
	return ts
}

// chdirTemp moves into a fresh temporary directory for the duration of the
// test and returns its resolved path.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	restoreWorkingDir(t)
	require.NoError(t, os.Chdir(dir))
	return dir
}

func restoreWorkingDir(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func getwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	return resolved
}
