package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// SetupLogger installs a JSON logger on stderr as both the slog default and
// the logger returned by GetLogger.
func SetupLogger(loglevel string) error {
	return SetupLoggerTo(os.Stderr, loglevel)
}

// SetupLoggerTo is SetupLogger with an explicit destination.
func SetupLoggerTo(w io.Writer, loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	logger := NewJSONLogger(w, level, true)
	slog.SetDefault(logger)
	SetLogger(NewSlogLogger(logger))
	return nil
}

// NewJSONLogger builds the JSON slog logger used throughout linml. Records
// carry "severity" and "message" keys and error attributes are decorated by
// ErrFmtHandler.
func NewJSONLogger(w io.Writer, level slog.Leveler, addSource bool) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   addSource,
		Level:       level,
		ReplaceAttr: renameCoreAttrs,
	})
	return slog.New(WrapByErrFmtHandler(handler))
}

func renameCoreAttrs(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	}
	return attr
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a slog
// level. The empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %q", level)
}
