package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{" off ", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"something", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("X", "val")
	if v := getenv("X", "def"); v != "val" {
		t.Fatalf("getenv returned %q, want 'val'", v)
	}
	if v := getenv("Y", "def"); v != "def" {
		t.Fatalf("getenv returned %q, want 'def'", v)
	}
}

func TestInitAndL(t *testing.T) {
	Init("info", false)
	if L() == nil {
		t.Fatalf("L() returned nil")
	}

	Init("debug", true)
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

// L falls back to the environment when Init was never called.
func TestLoggerAccessor_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	reset()
	lg := L()
	if lg == nil {
		t.Fatalf("logger is nil")
	}
	if lg.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lg.GetLevel())
	}
}

func TestWith_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "info", false)
	defer reset()

	With("upstream").Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "upstream" {
		t.Fatalf("component=%v, want upstream", entry["component"])
	}
	if entry["service"] != "bistpulse" {
		t.Fatalf("service=%v, want bistpulse", entry["service"])
	}
	if entry["message"] != "hello" {
		t.Fatalf("message=%v, want hello", entry["message"])
	}
}

// reset clears the configured logger so the next L call reinitialises it.
func reset() {
	mu.Lock()
	base = zerolog.Logger{}
	set = false
	mu.Unlock()
}
