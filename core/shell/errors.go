package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by DispatchErrors caused by a malformed
	// builtin invocation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrChangeDirectory is matched by DispatchErrors caused by the OS
	// rejecting a directory change.
	ErrChangeDirectory = errors.New("change directory failed")
)

// ErrorKind identifies the class of a DispatchError.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota
	ChangeDirectoryError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case ChangeDirectoryError:
		return "change_directory"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Message is the human readable text shown to the user for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case InvalidInput:
		return "Invalid input"
	case ChangeDirectoryError:
		return "Failed to change directory"
	default:
		return "Unknown error"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case ChangeDirectoryError:
		return ErrChangeDirectory
	default:
		return nil
	}
}

// DispatchError is the only error type the dispatcher surfaces to the
// interactive loop. A child process that fails or is killed is never a
// DispatchError.
type DispatchError struct {
	Kind ErrorKind
	// Err holds the underlying cause, it may be nil.
	Err error
}

func (e *DispatchError) Error() string {
	if e.Err == nil {
		return e.Kind.Message()
	}
	return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrInvalidInput) and friends.
func (e *DispatchError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func invalidInput(err error) error {
	return &DispatchError{Kind: InvalidInput, Err: err}
}

func changeDirectoryError(err error) error {
	return &DispatchError{Kind: ChangeDirectoryError, Err: err}
}
