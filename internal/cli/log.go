// Package cli implements the ukechords command-line interface.
//
// The root command prints diagrams for the chords named on the command line.
// Subcommands list the catalog, open an interactive shell, and generate
// shell completions. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - ukechords <chord>...: print diagrams, one shared fret window per call
//   - list: show the loaded catalog as a table
//   - tui: interactive lookup with scrolling and a help overlay
//   - completion: shell completion scripts, including chord names
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and catalog and lookup events reach the
// log through observability hooks.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, e.g.
// "Loaded 312 chords from 0 files (3ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks writes catalog and lookup events to a logger. Dropped definition
// lines are warnings; everything else is debug output.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnCatalogLoad(sources []string, chords, dropped int, d time.Duration) {
	h.logger.Debug("catalog loaded",
		"sources", strings.Join(sources, ", "),
		"chords", chords,
		"dropped", dropped,
		"duration", d.Round(time.Microsecond))
}

func (h logHooks) OnLineDropped(source string, line int, err error) {
	h.logger.Warn("skipping definition", "source", source, "line", line, "err", err)
}

func (h logHooks) OnLookup(term string, found bool) {
	h.logger.Debug("lookup", "term", term, "found", found)
}

func (h logHooks) OnBatch(terms, found int, window string, d time.Duration) {
	h.logger.Debug("batch",
		"terms", terms,
		"found", found,
		"window", window,
		"duration", d.Round(time.Microsecond))
}
