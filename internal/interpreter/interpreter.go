// Package interpreter runs the per-line read-tokenize-resolve-check-spawn
// loop shared by leash's batch and interactive entry points.
package interpreter

import (
	"errors"
	"fmt"

	"leash/internal/integrity"
	"leash/internal/policy"
	"leash/internal/runner"
	"leash/internal/tokenizer"
)

// Interpreter holds the loaded policy a session resolves lines against. It
// carries no per-line state between calls to RunLine: the canonical line,
// stages and env overlay are locals of the call that produces them.
type Interpreter struct {
	Policy policy.Policy
}

// New returns an Interpreter bound to pol.
func New(pol policy.Policy) *Interpreter {
	return &Interpreter{Policy: pol}
}

// LineOutcome reports what RunLine did with one input line, for callers
// that want to log or display it (debug mode, interactive prompts).
type LineOutcome struct {
	// NoOp is true for a blank or comment line: nothing else ran.
	NoOp bool
	// CanonicalLine is the resolved pipeline text that was executed, after
	// alias lookup (if the policy is non-blank) and tokenizer round-trip.
	CanonicalLine string
	// Results are the per-stage spawn outcomes, absent for a no-op line.
	Results []runner.StageResult
}

// RunLine executes the state machine for one raw input line: classify,
// resolve an alias if the policy is non-blank, tokenize, verify integrity,
// then spawn. It holds no state across calls — every call starts clean.
//
// A returned error means the line could not be run at all (alias not on
// the allow-list, malformed line, integrity mismatch, or the first stage
// failed to spawn). A non-fatal later-stage spawn failure is not surfaced
// as an error here: it is recorded in LineOutcome.Results so the caller can
// decide how to log it, and the loop is expected to continue to the next
// line either way.
func (in *Interpreter) RunLine(raw string) (LineOutcome, error) {
	trimmed, noop := tokenizer.Classify(raw)
	if noop {
		return LineOutcome{NoOp: true}, nil
	}

	line := trimmed
	var env []policy.EnvPair
	var alias string

	if !in.Policy.IsBlank() {
		alias = line
		resolved, pairs, err := in.Policy.ResolveAlias(alias)
		if err != nil {
			return LineOutcome{}, err
		}
		line, env = resolved, pairs
	}

	stages, err := tokenizer.Tokenize(line)
	if err != nil {
		return LineOutcome{}, err
	}

	if alias != "" {
		want, err := in.Policy.IntegrityFor(alias)
		if err != nil {
			return LineOutcome{}, err
		}
		if err := integrity.Verify(stages, want); err != nil {
			return LineOutcome{}, err
		}
	}

	results, err := runner.Run(stages, env)
	if err != nil {
		return LineOutcome{}, err
	}

	return LineOutcome{
		CanonicalLine: tokenizer.Join(stages),
		Results:       results,
	}, nil
}

// ErrorKind names which sentinel an error from RunLine wraps, for debug
// logging that wants a short tag rather than the full error text.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, policy.ErrPermissionDenied):
		return "permission-denied"
	case errors.Is(err, policy.ErrInvalidInput):
		return "invalid-input"
	case errors.Is(err, policy.ErrInvalidData):
		return "invalid-data"
	case errors.Is(err, policy.ErrParse):
		return "parse-error"
	case errors.Is(err, policy.ErrBrokenPipe):
		return "broken-pipe"
	case errors.Is(err, policy.ErrIO):
		return "io-error"
	default:
		return "unknown"
	}
}

// FormatError renders err as the single line the interactive and batch
// loops print to stderr on a rejected or failed line.
func FormatError(err error) string {
	return fmt.Sprintf("leash: %s: %v", ErrorKind(err), err)
}
