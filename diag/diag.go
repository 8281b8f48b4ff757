// Package diag carries the engine's non-fatal diagnostic stream
// (spec.md §7): configuration and range-parse warnings, emitted as
// structured log records rather than returned errors, since the caller
// has already decided to fall back to a default and continue.
//
// It wraps the standard library's log/slog rather than a third-party
// logging framework — see DESIGN.md for why no corpus logging library
// fit a warning-only, attribute-based stream this thin.
package diag

import (
	"log/slog"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.Default()
)

// SetLogger installs the *slog.Logger a host wants diagnostics routed
// through. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()

	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// Warn emits a non-fatal warning with structured attributes.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Info emits an informational record. The compute driver falls back to
// Info for its throttled progress log line (spec.md §4.5) when the host
// supplies no OnLog callback of its own.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}
