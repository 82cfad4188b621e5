package ui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/knowhow-tools/probe/internal/log"
)

// checkLogger routes a single check's log output. In plain mode lines
// go through a slog handler that prefixes each one with the check's
// position; in TUI mode records are forwarded to the Bubble Tea model
// through a callback logger so level filtering still applies.
type checkLogger struct {
	logger *slog.Logger
}

// newCheckLogger creates a new logger for one check
func newCheckLogger(program *Program, name string, index, total int) *checkLogger {
	if program.shouldShowPlainOutput() {
		handler := log.NewHandlerWithCheck(index, total, name, os.Stderr, log.GetCurrentLevel())
		return &checkLogger{logger: slog.New(handler)}
	}

	callback := func(record slog.Record) {
		program.sendLog(index, levelLabel(record.Level), formatRecord(record))
	}
	return &checkLogger{logger: log.NewCallbackLogger(callback, log.GetCurrentLevel())}
}

func (l *checkLogger) Info(msg string, args ...any) {
	l.logger.Log(nil, slog.LevelInfo, msg, args...)
}

func (l *checkLogger) Debug(msg string, args ...any) {
	l.logger.Log(nil, slog.LevelDebug, msg, args...)
}

func (l *checkLogger) Error(msg string, args ...any) {
	l.logger.Log(nil, slog.LevelError, msg, args...)
}

func (l *checkLogger) Warn(msg string, args ...any) {
	l.logger.Log(nil, slog.LevelWarn, msg, args...)
}

func (l *checkLogger) Trace(msg string, args ...any) {
	l.logger.Log(nil, slog.LevelDebug-4, msg, args...)
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	case level >= slog.LevelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

// formatRecord renders a record's message with its attributes inline
func formatRecord(r slog.Record) string {
	msg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})
	return msg
}

// LogEntry represents a single log message
type LogEntry struct {
	Level     string
	Message   string
	Timestamp time.Time
}
