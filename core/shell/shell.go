package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/josephlewis42/minish/core/logger"
)

// DefaultPrompt is shown when no prompt template is configured.
const DefaultPrompt = "rsh> "

// LineReader reads one line of input per call, showing the prompt first.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Shell is the interactive command interpreter. It's single threaded: one
// command runs at a time and the loop waits for it before prompting again.
type Shell struct {
	Reader   LineReader
	Launcher Launcher
	Logger   *logger.SessionLogger

	// Tokenize splits lines, defaults to whitespace splitting.
	Tokenize Tokenizer
	// Prompt is the prompt template, see ExpandPrompt.
	Prompt string
	// Colors controls error message coloring. Nil disables color.
	Colors *ColorPrinter

	Stdout io.Writer
	Stderr io.Writer

	history   []string
	exitHooks []func()
}

// NewShell creates a shell reading from reader and launching external
// commands with launcher.
func NewShell(reader LineReader, launcher Launcher) *Shell {
	return &Shell{
		Reader:   reader,
		Launcher: launcher,
		Prompt:   DefaultPrompt,
	}
}

func (s *Shell) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}

func (s *Shell) stderr() io.Writer {
	if s.Stderr == nil {
		return os.Stderr
	}
	return s.Stderr
}

func (s *Shell) launcher() Launcher {
	if s.Launcher == nil {
		return &ProcessLauncher{Errors: s.stderr()}
	}
	return s.Launcher
}

func (s *Shell) tokenizer() Tokenizer {
	if s.Tokenize == nil {
		return func(line string) (CommandLine, error) {
			return Tokenize(line), nil
		}
	}
	return s.Tokenize
}

// OnExit registers a function run by the exit builtin before the process
// terminates.
func (s *Shell) OnExit(hook func()) {
	s.exitHooks = append(s.exitHooks, hook)
}

func (s *Shell) runExitHooks() {
	for _, hook := range s.exitHooks {
		hook()
	}
}

// History returns the lines read this session.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

type historyResetter interface {
	ResetHistory()
}

// ClearHistory forgets the session history, including the reader's.
func (s *Shell) ClearHistory() {
	s.history = nil
	if r, ok := s.Reader.(historyResetter); ok {
		r.ResetHistory()
	}
}

// Run prompts for, reads and executes lines until the exit builtin ends the
// process or reading fails. Reading failures, including end of input, are
// returned; they are fatal to the session.
func (s *Shell) Run() error {
	for {
		s.Reader.SetPrompt(ExpandPrompt(s.Prompt))
		line, err := s.Reader.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// Interrupt clears the line.
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			s.history = append(s.history, line)
		}
		s.RunLine(line)
	}
}

// RunLine tokenizes and dispatches a single line, reporting any error.
func (s *Shell) RunLine(line string) {
	cl, err := s.tokenizer()(line)
	if err == nil {
		err = s.Dispatch(cl)
	}
	if err != nil {
		s.reportError(err)
	}
}

func (s *Shell) reportError(err error) {
	msg := err.Error()
	var de *DispatchError
	if !errors.As(err, &de) {
		msg = fmt.Sprintf("minish: %v", err)
	}
	fmt.Fprintln(s.stderr(), s.Colors.Sprintf(ErrorColor, "%s", msg))
}

// ErrorColor is applied to error messages.
var ErrorColor = []color.Attribute{color.FgRed, color.Bold}
