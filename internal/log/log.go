// Package log provides a small structured logger built on log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps a slog.Logger together with the configuration that built it.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to w. Without options it logs
// [DefaultFormat] at [DefaultLevel] without caller information.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := apply(config{output: w, level: DefaultLevel, format: DefaultFormat}, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// Wrap returns a new [Logger] with opts applied over the current config.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.config, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	l := Make(os.Stderr, WithLevel(LevelWarn), WithFormat(FormatText))
	defaultLogger.Store(&l)
}

// Default returns the process-wide logger.
func Default() Logger {
	return *defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// Discard returns a logger that drops every record.
func Discard() Logger {
	return Make(io.Discard, WithLevel(LevelError+1))
}
