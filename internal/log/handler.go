package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// CallbackHandler is a slog.Handler that forwards log records to a callback function
type CallbackHandler struct {
	level    slog.Level
	mu       sync.Mutex
	callback CallbackFunc
	attrs    []slog.Attr
}

// NewCallbackHandler creates a new slog handler that forwards logs to a callback
func NewCallbackHandler(callback CallbackFunc, level slog.Level) *CallbackHandler {
	return &CallbackHandler{
		level:    level,
		callback: callback,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *CallbackHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle handles the Record by forwarding to the callback
func (h *CallbackHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.callback == nil {
		return nil
	}

	if len(h.attrs) > 0 {
		record.AddAttrs(h.attrs...)
	}

	h.callback(record)
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the receiver's attributes and the arguments
func (h *CallbackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CallbackHandler{
		level:    h.level,
		callback: h.callback,
		attrs:    append(h.attrs, attrs...),
	}
}

// WithGroup returns a new Handler with the given group name
func (h *CallbackHandler) WithGroup(name string) slog.Handler {
	// Groups are not needed for check output
	return h
}

// Handler is a slog.Handler for formatted output with optional check information
type Handler struct {
	level       slog.Level
	mu          sync.Mutex
	checkNum    int
	totalChecks int
	checkName   string
	output      io.Writer
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:  level,
		output: output,
	}
}

// NewHandlerWithCheck creates a new handler that prefixes records with check information
func NewHandlerWithCheck(checkNum, totalChecks int, checkName string, output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:       level,
		checkNum:    checkNum,
		totalChecks: totalChecks,
		checkName:   checkName,
		output:      output,
	}
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes the Record and outputs formatted log
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Format level prefix
	var levelStr string
	switch {
	case r.Level >= slog.LevelError:
		levelStr = "[ERROR] "
	case r.Level >= slog.LevelWarn:
		levelStr = "[WARN] "
	case r.Level >= slog.LevelInfo:
		levelStr = "" // No prefix for INFO
	case r.Level >= slog.LevelDebug:
		levelStr = "[DEBUG] "
	default:
		levelStr = "[TRACE] "
	}

	// Format check info if available
	var checkInfo string
	if h.checkName != "" {
		checkInfo = fmt.Sprintf("[%d/%d %s] ", h.checkNum, h.totalChecks, h.checkName)
	}

	// Build the message with attributes, excluding check-related ones
	formattedMsg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		// Skip check-related attributes and time
		if a.Key == "checkIndex" || a.Key == "totalChecks" || a.Key == "checkName" || a.Key == slog.TimeKey {
			return true
		}
		// Format other attributes inline
		formattedMsg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	fmt.Fprintf(h.output, "%s%s%s\n", levelStr, checkInfo, formattedMsg)
	return nil
}

// WithAttrs returns a new Handler with the given attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Attrs are formatted inline at Handle time
	return h
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}
