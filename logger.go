package ggplay

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggplay and all its sub-packages.
// By default, ggplay produces no log output. Call SetLogger to enable logging.
// Pass nil to restore the default silent behavior.
//
// Log levels used by ggplay:
//   - [slog.LevelDebug]: render diagnostics (bounds, bitmap size, demo names)
//   - [slog.LevelWarn]: non-fatal issues (empty bounds, unbalanced Pop)
//
// Example:
//
//	ggplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggplay.
// Sub-packages call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
