package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/readline"
)

// PlainReader reads lines from a non-interactive source, writing the prompt
// before each read.
//
// Reads are buffered, so input past the current line is consumed by the
// shell. A child that reads the same stdin won't see it.
type PlainReader struct {
	prompt string
	w      io.Writer
	r      *bufio.Reader
}

var _ LineReader = (*PlainReader)(nil)

func NewPlainReader(r io.Reader, w io.Writer) *PlainReader {
	return &PlainReader{w: w, r: bufio.NewReader(r)}
}

func (p *PlainReader) SetPrompt(prompt string) {
	p.prompt = prompt
}

// Readline returns the next line without its terminator. A final line with no
// newline is returned before io.EOF.
func (p *PlainReader) Readline() (string, error) {
	if p.w != nil {
		fmt.Fprint(p.w, p.prompt)
	}
	line, err := p.r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line != "":
		return trimNewline(line), nil
	case err != nil:
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// TerminalReader reads lines with editing and history from a terminal.
type TerminalReader struct {
	*readline.Instance
}

var _ LineReader = (*TerminalReader)(nil)

// TerminalConfig configures a TerminalReader.
type TerminalConfig struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// HistoryFile persists history across sessions when set.
	HistoryFile  string
	HistoryLimit int
}

func NewTerminalReader(tc TerminalConfig) (*TerminalReader, error) {
	cfg := &readline.Config{
		Stdin:           readline.NewCancelableStdin(tc.Stdin),
		Stdout:          tc.Stdout,
		Stderr:          tc.Stderr,
		HistoryFile:     tc.HistoryFile,
		HistoryLimit:    tc.HistoryLimit,
		InterruptPrompt: "^C",
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &TerminalReader{Instance: instance}, nil
}

// ResetHistory drops the in-memory readline history.
func (t *TerminalReader) ResetHistory() {
	t.Operation.ResetHistory()
}
