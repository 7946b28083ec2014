package shell

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// CommandLine holds the ordered tokens of one line of input. The first token
// names the command. An empty CommandLine is a valid no-op.
type CommandLine []string

// Name returns the command name or the empty string for an empty line.
func (c CommandLine) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Tokenize splits a line on runs of whitespace. There's no quoting, escaping
// or globbing.
func Tokenize(line string) CommandLine {
	return CommandLine(strings.Fields(line))
}

// Tokenizer converts a raw line into a CommandLine.
type Tokenizer func(line string) (CommandLine, error)

const (
	TokenizerWhitespace = "whitespace"
	TokenizerShlex      = "shlex"
)

// NewTokenizer returns the tokenizer for the given mode name.
func NewTokenizer(mode string) (Tokenizer, error) {
	switch mode {
	case "", TokenizerWhitespace:
		return func(line string) (CommandLine, error) {
			return Tokenize(line), nil
		}, nil
	case TokenizerShlex:
		return shlexTokenize, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", mode)
	}
}

// shlexTokenize splits POSIX style, so quoted words stay together and quotes
// are removed.
func shlexTokenize(line string) (CommandLine, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, invalidInput(err)
	}

	var out CommandLine
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out, nil
}
