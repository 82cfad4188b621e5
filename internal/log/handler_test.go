package log

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestHandlerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("checks passed", slog.Int("count", 2))
	logger.Warn("slow check")
	logger.Error("check failed", slog.String("check", "fibonacci"))
	logger.Debug("suppressed at info level")

	want := "checks passed count=2\n" +
		"[WARN] slow check\n" +
		"[ERROR] check failed check=fibonacci\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestHandlerWithCheckPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandlerWithCheck(1, 2, "fibonacci", &buf, slog.LevelInfo))

	logger.Info("Fibonacci of 10 is: 55")

	want := "[1/2 fibonacci] Fibonacci of 10 is: 55\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	setupLogger(&buf)
	defer SetLevel(LevelInfo) // restore the stderr logger

	logger := Default()
	logger.Info("check passed", "check", "fibonacci")
	logger.Warn("slow check")
	logger.Debug("suppressed at info level")

	want := "check passed check=fibonacci\n[WARN] slow check\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"info", LevelInfo, false},
		{"DEBUG", LevelDebug, false},
		{"trace", LevelTrace, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
