package editor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the editor's logger. The editor is silent by
// default; pass nil to silence it again.
//
// Levels used:
//   - [slog.LevelDebug]: mode transitions, dropped stale loads
//   - [slog.LevelInfo]: session lifecycle, applied textures
//   - [slog.LevelWarn]: failed image decodes, render errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the editor's logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
