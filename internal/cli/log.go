// Package cli implements the layerheur command-line interface: a cobra
// root command with one subcommand per external operation (run, visualize,
// history), config-file defaults loaded via BurntSushi/toml, and optional
// observers (a status HTTP server, a bubbletea progress dashboard, a
// Mongo-backed run history) wired around the heuristic engine without the
// engine itself ever depending on them.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting, the same shape
// as the teacher's internal/cli/log.go: writes to w, filters at level,
// timestamps as "HH:MM:SS.hh" (hundredths of a second).
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package, distinct
// from other packages' context keys.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
