package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_endOfInput(t *testing.T) {
	ts := newTestShell(t, "")

	err := ts.Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, DefaultPrompt, ts.prompts.String())
}

func TestRun_blankLines(t *testing.T) {
	ts := newTestShell(t, "\n   \n\t\n")

	assert.ErrorIs(t, ts.Run(), io.EOF)
	assert.Empty(t, ts.launcher.calls)
	assert.Empty(t, ts.events)
	assert.Empty(t, ts.stderr.String())
	assert.Empty(t, ts.History())
	assert.Equal(t, strings.Repeat(DefaultPrompt, 4), ts.prompts.String())
}

func TestRun_continuesAfterErrors(t *testing.T) {
	restoreWorkingDir(t)
	input := strings.Join([]string{
		"cd",
		"cd /nonexistent/path",
		"no_such_program_xyz",
		"help",
		"ls -la",
	}, "\n")

	ts := newTestShell(t, input)
	ts.launcher.outcome = launchFailed(FailureNotFound, ErrNotFound)

	assert.ErrorIs(t, ts.Run(), io.EOF)

	stderr := ts.stderr.String()
	assert.Contains(t, stderr, "Usage: cd <directory>\nInvalid input\n")
	assert.Contains(t, stderr, "Failed to change directory: chdir /nonexistent/path:")
	assert.Contains(t, ts.stdout.String(), "The following are built in")
	assert.Equal(t, []CommandLine{{"no_such_program_xyz"}, {"ls", "-la"}}, ts.launcher.calls)
	assert.Equal(t, strings.Repeat(DefaultPrompt, 6), ts.prompts.String())
}

func TestRun_realLauncher(t *testing.T) {
	ts := newTestShell(t, "no_such_program_xyz\nhelp\n")
	ts.Launcher = &ProcessLauncher{Errors: ts.stderr}

	assert.ErrorIs(t, ts.Run(), io.EOF)
	assert.Equal(t, "Command not found: no_such_program_xyz\n", ts.stderr.String())
	assert.Contains(t, ts.stdout.String(), "The following are built in")
}

func TestRun_history(t *testing.T) {
	ts := newTestShell(t, "ls -la\n\n  \nhistory\n")

	assert.ErrorIs(t, ts.Run(), io.EOF)
	assert.Equal(t, "    1  ls -la\n    2  history\n", ts.stdout.String())
}

func TestRun_tokenizer(t *testing.T) {
	tokenize, err := NewTokenizer(TokenizerShlex)
	require.NoError(t, err)

	ts := newTestShell(t, "echo \"a b\"\necho \"open\n")
	ts.Tokenize = tokenize

	assert.ErrorIs(t, ts.Run(), io.EOF)
	assert.Equal(t, []CommandLine{{"echo", "a b"}}, ts.launcher.calls)
	assert.Contains(t, ts.stderr.String(), "Invalid input")
}

func TestRun_colors(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		ts := newTestShell(t, "cd\n")
		ts.Colors = &ColorPrinter{Mode: ColorAlways}

		assert.ErrorIs(t, ts.Run(), io.EOF)
		assert.Contains(t, ts.stderr.String(), "\x1b[")
		assert.Contains(t, ts.stderr.String(), "Invalid input")
	})

	t.Run("never", func(t *testing.T) {
		ts := newTestShell(t, "cd\n")
		ts.Colors = &ColorPrinter{Mode: ColorNever}

		assert.ErrorIs(t, ts.Run(), io.EOF)
		assert.NotContains(t, ts.stderr.String(), "\x1b[")
	})
}

type scriptedReader struct {
	prompts []string
	lines   []string
	errs    []error
}

func (s *scriptedReader) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func (s *scriptedReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func TestRun_interrupt(t *testing.T) {
	reader := &scriptedReader{
		lines: []string{"half typed", "ls"},
		errs:  []error{readline.ErrInterrupt, nil},
	}
	ts := newTestShell(t, "")
	ts.Reader = reader

	assert.ErrorIs(t, ts.Run(), io.EOF)
	assert.Equal(t, []CommandLine{{"ls"}}, ts.launcher.calls)
	assert.Len(t, reader.prompts, 3)
}

func TestRun_readError(t *testing.T) {
	broken := errors.New("broken pipe")
	reader := &scriptedReader{
		lines: []string{"ls", ""},
		errs:  []error{nil, broken},
	}
	ts := newTestShell(t, "")
	ts.Reader = reader

	err := ts.Run()
	assert.ErrorIs(t, err, broken)
	assert.Len(t, ts.launcher.calls, 1)
}

func TestRun_prompt(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("HOME", dir)

	reader := &scriptedReader{}
	ts := newTestShell(t, "")
	ts.Reader = reader
	ts.Prompt = `\w\$ `

	assert.ErrorIs(t, ts.Run(), io.EOF)
	expected := "~$ "
	if os.Getuid() == 0 {
		expected = "~# "
	}
	assert.Equal(t, []string{expected}, reader.prompts)
}

func TestExpandPrompt(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("USER", "alice")
	t.Setenv("HOME", "/nonexistent-home")

	assert.Equal(t, DefaultPrompt, ExpandPrompt(""))
	assert.Equal(t, "plain> ", ExpandPrompt("plain> "))
	assert.Equal(t, "alice "+dir+" ", ExpandPrompt(`\u \w `))

	t.Setenv("HOME", dir)
	assert.Equal(t, "~", ExpandPrompt(`\w`))

	host, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, "@"+host, ExpandPrompt(`@\h`))
}

func TestPlainReader(t *testing.T) {
	out := &strings.Builder{}
	reader := NewPlainReader(strings.NewReader("one\r\ntwo\nthree"), out)
	reader.SetPrompt("> ")

	for _, expected := range []string{"one", "two", "three"} {
		line, err := reader.Readline()
		require.NoError(t, err)
		assert.Equal(t, expected, line)
	}

	_, err := reader.Readline()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestPlainReader_buffersAhead(t *testing.T) {
	src := strings.NewReader("cat\nfor the child\n")
	reader := NewPlainReader(src, nil)

	line, err := reader.Readline()
	require.NoError(t, err)
	assert.Equal(t, "cat", line)

	// The rest of the input now sits in the shell's buffer.
	assert.Zero(t, src.Len())
	line, err = reader.Readline()
	require.NoError(t, err)
	assert.Equal(t, "for the child", line)
}
