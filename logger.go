package certgen

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
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
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for certgen and all its sub-packages.
// By default, certgen produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by certgen:
//   - [slog.LevelDebug]: resource fetches, per-recipient render timings
//   - [slog.LevelInfo]: session loaded, batch summary
//   - [slog.LevelWarn]: a recipient failed to render and was skipped
//
// Every record emitted by a sub-package carries a ComponentKey attribute.
//
// Example:
//
//	// Enable info-level logging to stderr:
//	certgen.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	certgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by certgen.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ComponentKey is the attribute naming the sub-package that logged a record.
const ComponentKey = "component"

// ComponentLogger returns the current logger tagged with ComponentKey set to
// name. Sub-packages (batch, source) log through it so records of one
// generation session can be told apart by stage. The silent default stays
// silent.
func ComponentLogger(name string) *slog.Logger {
	return Logger().With(slog.String(ComponentKey, name))
}
