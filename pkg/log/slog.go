package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// slogLogger adapts *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a Logger backed by l. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }

func (s *slogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.l.Error(msg, fields...)
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(holder{NewSlogLogger(nil)})
}

// holder keeps the atomic.Value's concrete type constant across SetLogger calls.
type holder struct{ Logger }

// GetLogger returns the package default logger.
func GetLogger() Logger {
	return defaultLogger.Load().(holder).Logger
}

// SetLogger replaces the package default logger. A nil logger restores the
// slog.Default()-backed one.
func SetLogger(l Logger) {
	if l == nil {
		l = NewSlogLogger(nil)
	}
	defaultLogger.Store(holder{l})
}
