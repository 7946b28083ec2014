//go:build unix

package shell

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// wait4 is swapped out in tests to feed synthetic status reports.
var wait4 = unix.Wait4

// waitTerminal reaps proc, re-issuing the wait until the child has exited or
// been killed by a signal. Stop and continue reports don't end the wait.
func waitTerminal(proc *os.Process) Outcome {
	defer proc.Release()

	for {
		var status unix.WaitStatus
		_, err := wait4(proc.Pid, &status, unix.WUNTRACED, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return launchFailed(FailureOther, fmt.Errorf("wait for pid %d: %w", proc.Pid, err))
		case status.Exited():
			return exited(status.ExitStatus())
		case status.Signaled():
			return signaled(status.Signal())
		}
	}
}

func isResourceExhausted(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM)
}

func isExecFormatError(err error) bool {
	return errors.Is(err, unix.ENOEXEC)
}
