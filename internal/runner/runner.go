// Package runner spawns a resolved pipeline of stages, wiring each stage's
// stdout directly into the next stage's stdin via os/exec.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"leash/internal/policy"
	"leash/internal/tokenizer"
)

// StageResult records the outcome of spawning one stage. It says nothing
// about how (or whether) the stage exits: children are never reaped here.
type StageResult struct {
	Index   int
	Program string
	Err     error
}

// Run spawns stages in order, feeding stage i's stdout into stage i+1's
// stdin. The first and last stage inherit the parent process's stdin and
// stdout respectively; stderr is always inherited by every stage.
//
// env is an ordered KEY=VALUE overlay applied on top of the current process
// environment (later entries win on duplicate keys, matching how
// AclEntry.EnvPairs preserves declaration order).
//
// Run only spawns; it never waits on a child. Once every stage has started,
// Run returns immediately and the spawned processes keep running
// independently — the caller's line loop is free to read and act on the
// next input line while they do. A failure spawning the first stage is
// fatal and returned immediately, wrapped in ErrIO: with nothing yet
// running, there is no pipeline to salvage. A failure spawning a later
// stage is not fatal: Run records it in the returned []StageResult and
// stops advancing the pipeline, but returns a nil error so the caller's
// line loop can continue to the next input line.
func Run(stages []tokenizer.Stage, env []policy.EnvPair) ([]StageResult, error) {
	if len(stages) == 0 {
		return nil, nil
	}

	overlay := make([]string, len(env))
	for i, p := range env {
		overlay[i] = p.Key + "=" + p.Value
	}

	results := make([]StageResult, 0, len(stages))
	var pending io.ReadCloser

	for i, stage := range stages {
		cmd := exec.Command(stage.Program(), stage.Args()...)
		cmd.Env = append(os.Environ(), overlay...)
		cmd.Stderr = os.Stderr

		last := i == len(stages)-1

		if pending != nil {
			cmd.Stdin = pending
		} else {
			cmd.Stdin = os.Stdin
		}

		var next io.ReadCloser
		if last {
			cmd.Stdout = os.Stdout
		} else {
			out, err := cmd.StdoutPipe()
			if err != nil {
				return finish(results, i, stage.Program(), err)
			}
			next = out
		}

		if err := cmd.Start(); err != nil {
			if i == 0 {
				return results, fmt.Errorf("%w: spawning %q: %w", policy.ErrIO, stage.Program(), err)
			}
			return finish(results, i, stage.Program(), err)
		}

		results = append(results, StageResult{Index: i, Program: stage.Program()})
		pending = next
	}

	return results, nil
}

// finish records a non-fatal failure spawning stage i and returns what ran
// so far with a nil error, so the interpreter loop can continue.
func finish(results []StageResult, i int, program string, err error) ([]StageResult, error) {
	results = append(results, StageResult{
		Index:   i,
		Program: program,
		Err:     fmt.Errorf("%w: spawning %q: %w", policy.ErrBrokenPipe, program, err),
	})
	return results, nil
}
