package main

import (
	"io"

	"github.com/chzyer/readline"

	"leash/internal/interpreter"
)

const prompt = "|x|> "

// runInteractive reads lines from an interactive readline prompt and runs
// each through in, until stdin reaches EOF (Ctrl-D), which ends the
// session with a nil error.
func runInteractive(in *interpreter.Interpreter, log *debugLogger) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}
		runAndReport(in, log, line)
	}
}
