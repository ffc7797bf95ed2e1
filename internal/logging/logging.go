// Package logging builds the zerolog logger shared by all gh-notifier components.
//
// Interactive runs get a human-readable console writer; timer-triggered runs
// (stderr captured by the journal or launchd) get one JSON object per line.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Options configures New.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values mean info.
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
	// Console forces the console writer. When false the writer is chosen by
	// whether the output is a terminal.
	Console bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	lvl := ParseLevel(opts.Level, zerolog.InfoLevel)
	if opts.Debug {
		lvl = zerolog.DebugLevel
	}

	out := w
	if opts.Console || isTerminal(w) {
		out = newConsoleWriter(w)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("component", "gh-notifier").Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, returning def for unknown names.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}

func newConsoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: !isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
