//go:build !unix

package shell

import (
	"fmt"
	"os"
)

func waitTerminal(proc *os.Process) Outcome {
	state, err := proc.Wait()
	if err != nil {
		return launchFailed(FailureOther, fmt.Errorf("wait for pid %d: %w", proc.Pid, err))
	}
	return exited(state.ExitCode())
}

func isResourceExhausted(err error) bool {
	return false
}

func isExecFormatError(err error) bool {
	return false
}
