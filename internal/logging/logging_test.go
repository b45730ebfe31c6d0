package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf, Prefix: "keypress"})
	l.now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	}
	return l, &buf
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.Info("loaded %d bindings", 3)

	want := "2026-01-02T03:04:05.006 [INFO] keypress: loaded 3 bindings\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoggerFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("output contains filtered levels: %q", out)
	}
	if !strings.Contains(out, "[WARN] keypress: warn") || !strings.Contains(out, "[ERROR] keypress: error") {
		t.Errorf("output missing enabled levels: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.WithComponent("keymap").WithField("file", "keys.toml").Info("reloaded")

	if !strings.HasSuffix(buf.String(), "reloaded {component=keymap, file=keys.toml}\n") {
		t.Errorf("output = %q, want sorted fields", buf.String())
	}

	// The parent logger is unchanged.
	buf.Reset()
	l.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("parent logger gained fields: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if Discard.Enabled(level) {
			t.Errorf("Discard.Enabled(%v) = true", level)
		}
	}
	Discard.Error("dropped")
}
