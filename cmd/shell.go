package cmd

import (
	"fmt"
	"os"

	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/shell"
	"golang.org/x/term"
)

type closer func() error

func runShell(cfg *config.Configuration) error {
	var toClose []closer
	closeAll := func() {
		for _, c := range toClose {
			_ = c()
		}
	}
	defer closeAll()

	events := logger.NewNopLogger()
	logFd, err := cfg.OpenEventLog()
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	if logFd != nil {
		toClose = append(toClose, logFd.Close)
		events = logger.NewJsonLinesLogRecorder(logFd)
	}

	tokenize, err := shell.NewTokenizer(cfg.Tokenizer)
	if err != nil {
		return err
	}

	var reader shell.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		terminal, err := shell.NewTerminalReader(shell.TerminalConfig{
			Stdin:        os.Stdin,
			Stdout:       os.Stdout,
			Stderr:       os.Stderr,
			HistoryFile:  cfg.HistoryPath(),
			HistoryLimit: cfg.HistoryLimit,
		})
		if err != nil {
			return err
		}
		toClose = append(toClose, terminal.Close)
		reader = terminal
	} else {
		reader = shell.NewPlainReader(os.Stdin, os.Stdout)
	}

	sh := shell.NewShell(reader, &shell.ProcessLauncher{Errors: os.Stderr})
	sh.Tokenize = tokenize
	sh.Prompt = cfg.Prompt
	sh.Logger = events.NewSession()
	sh.Colors = &shell.ColorPrinter{
		Mode: cfg.Color,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stderr.Fd()))
		},
	}
	sh.OnExit(closeAll)

	return sh.Run()
}
