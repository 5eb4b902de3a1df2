package gfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by gfx. By default gfx is silent.
// Pass nil to restore the silent default.
//
// Log levels used by gfx:
//   - [slog.LevelDebug]: shader compilation, linking and buffer uploads
//   - [slog.LevelInfo]: renderer lifecycle (ready, closed)
//   - [slog.LevelWarn]: caller contract violations and unexpected driver errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current gfx logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
