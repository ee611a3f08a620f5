package main

import (
	"bufio"
	"fmt"
	"os"

	"leash/internal/interpreter"
)

// runBatch reads path line by line and runs each through in. A rejected or
// failed line is reported to stderr; the loop continues to the next line
// regardless, and EOF ends the run with a nil error.
func runBatch(in *interpreter.Interpreter, log *debugLogger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		runAndReport(in, log, scanner.Text())
	}
	return scanner.Err()
}

// runAndReport runs one line through in, logging its outcome via log and
// printing any error to stderr. It never returns an error: every rejected
// or partially-failed line is reported and the caller moves on.
func runAndReport(in *interpreter.Interpreter, log *debugLogger, raw string) {
	out, err := in.RunLine(raw)
	if err != nil {
		log.reject(raw, err)
		fmt.Fprintln(os.Stderr, interpreter.FormatError(err))
		return
	}
	if out.NoOp {
		return
	}
	log.line(out.CanonicalLine)
	for _, r := range out.Results {
		if r.Err != nil {
			log.stageFailure(r.Program, r.Err)
			fmt.Fprintln(os.Stderr, interpreter.FormatError(r.Err))
		}
	}
}
