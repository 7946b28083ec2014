package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/pborman/getopt/v2"
)

// Builtin is a command implemented by the shell itself. It receives the full
// command line, including its own name.
type Builtin func(s *Shell, args CommandLine) error

// builtinNames fixes the order builtins are listed in.
var builtinNames = []string{"cd", "help", "exit", "history"}

// allBuiltins is built once and never mutated.
var allBuiltins = map[string]Builtin{
	"cd":      Cd,
	"help":    Help,
	"exit":    Exit,
	"history": History,
}

// Resolve looks up a builtin by exact, case-sensitive name.
func Resolve(name string) (Builtin, bool) {
	builtin, ok := allBuiltins[name]
	return builtin, ok
}

// BuiltinNames lists the builtins in display order.
func BuiltinNames() []string {
	return append([]string(nil), builtinNames...)
}

// osExit is replaced when the shell is embedded in a test binary.
var osExit = os.Exit

// Cd changes the process working directory. It requires exactly one argument.
func Cd(s *Shell, args CommandLine) error {
	if len(args) != 2 {
		fmt.Fprintln(s.stderr(), "Usage: cd <directory>")
		return invalidInput(nil)
	}

	if err := os.Chdir(args[1]); err != nil {
		return changeDirectoryError(err)
	}
	if wd, err := os.Getwd(); err == nil {
		os.Setenv("PWD", wd)
	}
	return nil
}

// Help prints the usage summary.
func Help(s *Shell, args CommandLine) error {
	w := s.stdout()
	fmt.Fprintln(w, "minish: simple shell")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")
	fmt.Fprintln(w, strings.Join(builtinNames, "\t"))
	return nil
}

// Exit quits the shell with status 0, ignoring any arguments. It doesn't
// return.
func Exit(s *Shell, args CommandLine) error {
	s.runExitHooks()
	osExit(0)
	return nil
}

// History lists or clears the lines read this session.
func History(s *Shell, args CommandLine) error {
	opts := getopt.New()
	clearOpt := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr()
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display the history list with line numbers.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		if err != nil {
			return invalidInput(err)
		}
		return nil
	}

	if *clearOpt {
		s.ClearHistory()
		return nil
	}

	for i, line := range s.history {
		fmt.Fprintf(s.stdout(), "% 5d  %s\n", i+1, line)
	}
	return nil
}
