// Package tokenizer splits one raw input line into a pipeline of stages,
// each a program plus its argv.
package tokenizer

import (
	"fmt"
	"strings"

	"leash/internal/policy"
)

// Stage is one parsed command: Argv[0] is the program, Argv[1:] its args.
type Stage struct {
	Argv []string
}

// Program returns the stage's program path/name (Argv[0]).
func (s Stage) Program() string {
	return s.Argv[0]
}

// Args returns the stage's arguments, excluding the program itself.
func (s Stage) Args() []string {
	return s.Argv[1:]
}

// Tokenize splits a trimmed, non-empty, non-comment line into stages.
// Callers must handle the no-op cases (empty line, comment line) before
// calling Tokenize — see Classify.
//
// The line is split on the literal '|' character into stage strings, each
// of which is split on ASCII whitespace into argv tokens (each further
// trimmed). A stage with zero tokens after splitting is malformed and
// rejected with ErrInvalidInput.
func Tokenize(line string) ([]Stage, error) {
	parts := strings.Split(line, "|")
	stages := make([]Stage, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(part)
		tokens := make([]string, 0, len(fields))
		for _, f := range fields {
			if t := strings.TrimSpace(f); t != "" {
				tokens = append(tokens, t)
			}
		}
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: empty stage in pipeline %q", policy.ErrInvalidInput, line)
		}
		stages = append(stages, Stage{Argv: tokens})
	}
	return stages, nil
}

// Classify reports what kind of line raw is, after trimming surrounding
// whitespace. A blank line or one starting with '#' is a no-op; otherwise
// the trimmed text is returned for further processing (alias resolution,
// then Tokenize).
func Classify(raw string) (trimmed string, isNoOp bool) {
	trimmed = strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return trimmed, true
	}
	return trimmed, false
}

// Join re-renders stages as canonical text: stages separated by " | ",
// argv tokens separated by a single space. Used for round-trip testing
// and for debug diagnostics.
func Join(stages []Stage) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = strings.Join(s.Argv, " ")
	}
	return strings.Join(parts, " | ")
}
