package artgen

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports every level disabled, so
// attributes are never built.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes artgen's diagnostics to l. Renders are silent until a
// logger is installed, and SetLogger(nil) silences them again. It is safe to
// call while other goroutines are rendering.
//
// A render logs every record with a render_id attribute. Per-stage timings go
// out at Debug, a summary of the finished render at Info, and a rejected
// GenerationConfig at Warn:
//
//	artgen.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return current.Load() }
