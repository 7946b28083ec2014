package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleNewJsonLinesLogRecorder() {
	logger := NewJsonLinesLogRecorder(os.Stdout)
	logger.Now = func() time.Time {
		return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	logger.Sessionless().Record(&CommandReceived{Command: []string{"ls", "-la"}})
	logger.Sessionless().Record(&CommandRouted{Command: []string{"ls", "-la"}, Route: RouteExternal, ResolvedName: "ls"})

	// Output: {"timestamp_micros":1136171045000000,"command_received":{"command":["ls","-la"]}}
	// {"timestamp_micros":1136171045000000,"command_routed":{"command":["ls","-la"],"route":"external","resolved_name":"ls"}}
}

func TestSessionLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	session := NewJsonLinesLogRecorder(buf).NewSession()
	require.NotEmpty(t, session.SessionID())

	require.NoError(t, session.Record(&ChildExited{Command: []string{"false"}, Status: "exited", ExitCode: 1}))
	require.NoError(t, session.Record(&CommandFailed{Command: []string{"cd"}, Route: RouteBuiltin, Kind: "invalid_input"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, session.SessionID(), first.SessionID)
	assert.Equal(t, session.SessionID(), second.SessionID)
	assert.Equal(t, &ChildExited{Command: []string{"false"}, Status: "exited", ExitCode: 1}, first.GetLogType())
	assert.Equal(t, "invalid_input", second.CommandFailed.Kind)
	assert.NotZero(t, first.TimestampMicros)
}

func TestNewSession_unique(t *testing.T) {
	logger := NewNopLogger()
	assert.NotEqual(t, logger.NewSession().SessionID(), logger.NewSession().SessionID())
	assert.Empty(t, logger.Sessionless().SessionID())
	assert.NoError(t, logger.Sessionless().Record(&CommandReceived{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestJsonLinesLogRecorder_writeError(t *testing.T) {
	err := NewJsonLinesLogRecorder(failingWriter{}).Sessionless().Record(&CommandReceived{})
	assert.Error(t, err)
}

func TestLogEntry_GetLogType(t *testing.T) {
	var nilEntry *LogEntry
	assert.Nil(t, nilEntry.GetLogType())
	assert.Nil(t, (&LogEntry{}).GetLogType())

	for _, event := range []LogType{
		&CommandReceived{},
		&CommandRouted{},
		&CommandFailed{},
		&ChildExited{},
	} {
		le := &LogEntry{}
		le.SetLogType(event)
		assert.Same(t, event, le.GetLogType())
	}
}
