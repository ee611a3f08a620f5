package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"leash/internal/interpreter"
	"leash/internal/policy"
)

// debugLogger prints the session diagnostics the -d/--debug flag enables.
// With debug off, every method is a no-op; callers don't need to branch on
// flagDebug themselves.
type debugLogger struct {
	enabled bool
	log     zerolog.Logger

	kindStyle lipgloss.Style
	lineStyle lipgloss.Style
}

func newDebugLogger(enabled bool) *debugLogger {
	// lipgloss's default renderer profiles os.Stdout; diagnostics go to
	// stderr, so build a renderer bound to stderr and let it fall back to
	// plain text on its own when stderr isn't a terminal.
	r := lipgloss.NewRenderer(os.Stderr)
	return &debugLogger{
		enabled:   enabled,
		log:       zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger(),
		kindStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		lineStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// policy logs the loaded policy's size and blank state once at startup.
func (d *debugLogger) policy(pol policy.Policy) {
	if !d.enabled {
		return
	}
	d.log.Debug().
		Int("entries", len(pol.Entries())).
		Bool("blank", pol.IsBlank()).
		Msg("policy loaded")
}

// line logs the canonical text a resolved line expanded to.
func (d *debugLogger) line(canonical string) {
	if !d.enabled {
		return
	}
	d.log.Debug().Msg(d.kindStyle.Render("resolved") + " " + d.lineStyle.Render(canonical))
}

// reject logs a line that RunLine refused to execute, along with its error
// kind (see interpreter.ErrorKind).
func (d *debugLogger) reject(raw string, err error) {
	if !d.enabled {
		return
	}
	d.log.Debug().
		Str("kind", interpreter.ErrorKind(err)).
		Str("line", raw).
		Msg(d.kindStyle.Render("rejected"))
}

// stageFailure logs a non-fatal later-stage spawn failure.
func (d *debugLogger) stageFailure(program string, err error) {
	if !d.enabled {
		return
	}
	d.log.Debug().Str("program", program).Err(err).Msg("stage failed")
}
