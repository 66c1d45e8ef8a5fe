package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerAttachesServiceFields(t *testing.T) {
	logger := NewLogger(Config{Service: "svc", Version: "dev"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	got := FromContext(ctx, nil)
	if got != logger {
		t.Fatal("expected context logger")
	}

	fallback := slog.New(slog.NewTextHandler(&buf, nil))
	if FromContext(context.Background(), fallback) != fallback {
		t.Fatal("expected fallback when context is empty")
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic with a nil logger.
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "fetch failed", context.DeadlineExceeded)

	if !strings.Contains(buf.String(), "deadline exceeded") {
		t.Fatalf("expected error attribute in %q", buf.String())
	}
}
