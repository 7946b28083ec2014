package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries int        `json:"invalid_entries,omitempty"`

	Received ReceivedReport `json:"received_report"`
	Routed   RoutedReport   `json:"routed_report"`
	Failed   FailedReport   `json:"failed_report"`
	Exited   ExitedReport   `json:"exited_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch event := le.GetLogType().(type) {
	case *CommandReceived:
		r.Received.update(event)
	case *CommandRouted:
		r.Routed.update(event)
	case *CommandFailed:
		r.Failed.update(event)
	case *ChildExited:
		r.Exited.update(event)
	default:
		r.InvalidEntries++
	}
}

type ReceivedReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Full command lines
	CommandLines StrCounter `json:"command_lines"`
}

func (r *ReceivedReport) update(event *CommandReceived) {
	if len(event.Command) > 0 {
		r.CommandNames.Increment(event.Command[0])
	}
	r.CommandLines.Increment(strings.Join(event.Command, " "))
}

type RoutedReport struct {
	Routes StrCounter `json:"routes"`
}

func (r *RoutedReport) update(event *CommandRouted) {
	r.Routes.Increment(string(event.Route))
}

type FailedReport struct {
	Kinds        StrCounter `json:"kinds"`
	CommandNames StrCounter `json:"command_names"`
}

func (r *FailedReport) update(event *CommandFailed) {
	r.Kinds.Increment(event.Kind)
	if len(event.Command) > 0 {
		r.CommandNames.Increment(event.Command[0])
	}
}

type ExitedReport struct {
	Statuses StrCounter `json:"statuses"`
}

func (r *ExitedReport) update(event *ChildExited) {
	switch event.Status {
	case "signaled":
		r.Statuses.Increment(fmt.Sprintf("signal %d", event.Signal))
	default:
		r.Statuses.Increment(fmt.Sprintf("%s %d", event.Status, event.ExitCode))
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// Keys returns the counted strings in sorted order.
func (s *StrCounter) Keys() []string {
	var out []string
	for k := range s.internal {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON implements custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}
