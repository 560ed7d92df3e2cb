package logger

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"tripdesk/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"text", "json", "pretty"} {
		t.Run(format, func(t *testing.T) {
			l, err := New(config.LogConfig{Level: "debug", Format: format, Output: "stderr"})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer l.Close()
			if l.Logger == nil {
				t.Fatal("expected non-nil slog logger")
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestWith(t *testing.T) {
	l, err := New(config.LogConfig{Level: "info", Format: "text", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	child := l.With("component", "api")
	if child.closer != nil {
		t.Error("child logger must not take ownership of the closer")
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	wrapped := WrapError(base, "fetching hotels")

	if wrapped == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if !strings.Contains(wrapped.Error(), "fetching hotels") {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}

	var we *WrappedError
	if !errors.As(wrapped, &we) {
		t.Fatal("expected *WrappedError")
	}
	if we.Caller() == "unknown" || we.Caller() == "" {
		t.Errorf("expected caller info, got %q", we.Caller())
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "anything") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("this goes nowhere", "k", "v")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
