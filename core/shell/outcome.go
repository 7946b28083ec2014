package shell

import (
	"fmt"
	"syscall"
)

// OutcomeKind is the terminal disposition of a launched command.
type OutcomeKind int

const (
	ExitedNormally OutcomeKind = iota
	TerminatedBySignal
	LaunchFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case ExitedNormally:
		return "exited"
	case TerminatedBySignal:
		return "signaled"
	case LaunchFailed:
		return "launch_failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// LaunchFailure classifies why a command couldn't be started.
type LaunchFailure string

const (
	FailureNone             LaunchFailure = ""
	FailureNotFound         LaunchFailure = "not_found"
	FailurePermissionDenied LaunchFailure = "permission_denied"
	FailureResources        LaunchFailure = "resources"
	FailureOther            LaunchFailure = "other"
)

// Outcome is the terminal status of an external command. It is reported,
// never escalated: a non-zero exit of a user program isn't a shell error.
type Outcome struct {
	Kind OutcomeKind

	// ExitCode is set when Kind is ExitedNormally.
	ExitCode int
	// Signal is set when Kind is TerminatedBySignal.
	Signal syscall.Signal

	// Failure and Err are set when Kind is LaunchFailed.
	Failure LaunchFailure
	Err     error
}

func (o Outcome) String() string {
	switch o.Kind {
	case ExitedNormally:
		return fmt.Sprintf("exited with status %d", o.ExitCode)
	case TerminatedBySignal:
		return fmt.Sprintf("terminated by signal %d (%v)", int(o.Signal), o.Signal)
	default:
		return fmt.Sprintf("launch failed (%s): %v", o.Failure, o.Err)
	}
}

func exited(code int) Outcome {
	return Outcome{Kind: ExitedNormally, ExitCode: code}
}

func signaled(sig syscall.Signal) Outcome {
	return Outcome{Kind: TerminatedBySignal, Signal: sig}
}

func launchFailed(failure LaunchFailure, err error) Outcome {
	return Outcome{Kind: LaunchFailed, Failure: failure, Err: err}
}
