package shell

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/spf13/afero"
)

// Launcher runs an external command to completion.
type Launcher interface {
	Launch(argv CommandLine) Outcome
}

// ProcessLauncher starts external programs as child processes and blocks
// until they reach a terminal status. Only one child is alive at a time.
//
// Spawning is atomic: either the child is running the requested program or
// the call fails in the shell process before any state is duplicated.
type ProcessLauncher struct {
	// Fs is searched for executables, defaults to the OS filesystem.
	Fs afero.Fs
	// LookupEnv reads the shell's environment, defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// Environ is the environment passed to children, defaults to os.Environ.
	Environ func() []string

	// Files are handed to the child as its stdin, stdout and stderr. Nil
	// entries default to the shell's own.
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	// Errors receives launch failure messages, defaults to os.Stderr.
	Errors io.Writer
}

var _ Launcher = (*ProcessLauncher)(nil)

func (l *ProcessLauncher) fs() afero.Fs {
	if l.Fs == nil {
		return afero.NewOsFs()
	}
	return l.Fs
}

// DefaultPath is searched when PATH is unset.
const DefaultPath = "/bin:/usr/bin"

// BourneShell runs executable files that have no interpreter line.
const BourneShell = "/bin/sh"

func (l *ProcessLauncher) lookupEnv(key string) (string, bool) {
	if l.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return l.LookupEnv(key)
}

// searchPath is PATH, DefaultPath when it's unset, or the working directory
// when it's set but empty.
func (l *ProcessLauncher) searchPath() string {
	path, ok := l.lookupEnv("PATH")
	switch {
	case !ok:
		return DefaultPath
	case path == "":
		return "."
	default:
		return path
	}
}

func (l *ProcessLauncher) environ() []string {
	if l.Environ == nil {
		return os.Environ()
	}
	return l.Environ()
}

func (l *ProcessLauncher) errOut() io.Writer {
	if l.Errors == nil {
		return os.Stderr
	}
	return l.Errors
}

func orDefault(f, def *os.File) *os.File {
	if f == nil {
		return def
	}
	return f
}

// Launch resolves argv[0] against PATH, starts it with argv as its argument
// vector and waits for it to exit or be killed. An executable file the OS
// can't load is run by BourneShell instead. Failures are written to the
// error stream and returned as a LaunchFailed outcome, never retried.
func (l *ProcessLauncher) Launch(argv CommandLine) Outcome {
	if len(argv) == 0 {
		return launchFailed(FailureOther, errors.New("empty command"))
	}
	name := argv.Name()

	execPath, err := LookPath(l.fs(), l.searchPath(), name)
	if err != nil {
		fmt.Fprintf(l.errOut(), "Command not found: %s\n", name)
		return launchFailed(classifyLaunchError(err), err)
	}

	// The shell survives an interrupt aimed at the foreground child.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	proc, err := l.start(execPath, argv)
	if isExecFormatError(err) {
		// A file without an interpreter line is a shell script.
		proc, err = l.start(BourneShell, append(CommandLine{BourneShell, execPath}, argv[1:]...))
	}
	if err != nil {
		failure := classifyLaunchError(err)
		if failure == FailureResources {
			fmt.Fprintf(l.errOut(), "Fork failed: %v\n", err)
		} else {
			fmt.Fprintf(l.errOut(), "Command not found: %s\n", name)
		}
		return launchFailed(failure, err)
	}

	return waitTerminal(proc)
}

func (l *ProcessLauncher) start(execPath string, argv CommandLine) (*os.Process, error) {
	return os.StartProcess(execPath, argv, &os.ProcAttr{
		Env: l.environ(),
		Files: []*os.File{
			orDefault(l.Stdin, os.Stdin),
			orDefault(l.Stdout, os.Stdout),
			orDefault(l.Stderr, os.Stderr),
		},
	})
}

func classifyLaunchError(err error) LaunchFailure {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return FailureNotFound
	case errors.Is(err, fs.ErrPermission):
		return FailurePermissionDenied
	case isResourceExhausted(err):
		return FailureResources
	default:
		return FailureOther
	}
}
