package logger

// Route is the dispatch decision made for a command.
type Route string

const (
	RouteBuiltin  Route = "builtin"
	RouteExternal Route = "external"
)

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	isLogType()
}

// CommandReceived is logged for every non-empty line read.
type CommandReceived struct {
	Command []string `json:"command"`
}

// CommandRouted records whether a command went to a builtin or the launcher.
type CommandRouted struct {
	Command []string `json:"command"`
	Route   Route    `json:"route"`
	// ResolvedName is the builtin name or the program name.
	ResolvedName string `json:"resolved_name,omitempty"`
}

// CommandFailed is logged when a builtin returns an error or an external
// command couldn't be started.
type CommandFailed struct {
	Command []string `json:"command"`
	Route   Route    `json:"route"`
	// Kind is the error or launch failure class.
	Kind  string `json:"kind"`
	Error string `json:"error,omitempty"`
}

// ChildExited is logged once the launched program reaches a terminal status.
type ChildExited struct {
	Command  []string `json:"command"`
	Status   string   `json:"status"`
	ExitCode int      `json:"exit_code,omitempty"`
	Signal   int      `json:"signal,omitempty"`
}

func (*CommandReceived) isLogType() {}
func (*CommandRouted) isLogType()   {}
func (*CommandFailed) isLogType()   {}
func (*ChildExited) isLogType()     {}

// LogEntry is a single line of the event log. Exactly one event field is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	CommandReceived *CommandReceived `json:"command_received,omitempty"`
	CommandRouted   *CommandRouted   `json:"command_routed,omitempty"`
	CommandFailed   *CommandFailed   `json:"command_failed,omitempty"`
	ChildExited     *ChildExited     `json:"child_exited,omitempty"`
}

// GetLogType returns the event held by the entry or nil if none is set.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le == nil:
		return nil
	case le.CommandReceived != nil:
		return le.CommandReceived
	case le.CommandRouted != nil:
		return le.CommandRouted
	case le.CommandFailed != nil:
		return le.CommandFailed
	case le.ChildExited != nil:
		return le.ChildExited
	default:
		return nil
	}
}

// SetLogType stores the event in the matching field.
func (le *LogEntry) SetLogType(event LogType) {
	switch event := event.(type) {
	case *CommandReceived:
		le.CommandReceived = event
	case *CommandRouted:
		le.CommandRouted = event
	case *CommandFailed:
		le.CommandFailed = event
	case *ChildExited:
		le.ChildExited = event
	}
}
