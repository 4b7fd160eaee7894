package zapbackend

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/platformlog/platform"
)

func newObserved(level zapcore.Level) (*Backend, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return New(zap.New(core)), logs
}

func TestBackend_Write(t *testing.T) {
	b, logs := newObserved(zapcore.DebugLevel)

	b.Write(platform.LevelWarn, "wifi", "%s", "[WARN] [wifi] rssi low\n")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", e.Level)
	}
	if e.Message != "[WARN] [wifi] rssi low" {
		t.Errorf("message = %q", e.Message)
	}
	if got := e.ContextMap()["tag"]; got != "wifi" {
		t.Errorf("tag = %v, want wifi", got)
	}
}

func TestBackend_LevelMapping(t *testing.T) {
	tests := []struct {
		in   platform.Level
		want zapcore.Level
	}{
		{platform.LevelVerbose, zapcore.DebugLevel},
		{platform.LevelDebug, zapcore.DebugLevel},
		{platform.LevelInfo, zapcore.InfoLevel},
		{platform.LevelWarn, zapcore.WarnLevel},
		{platform.LevelError, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		if got := toZapLevel(tt.in); got != tt.want {
			t.Errorf("toZapLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBackend_NoneIsDropped(t *testing.T) {
	b, logs := newObserved(zapcore.DebugLevel)
	b.Write(platform.LevelNone, "x", "%s", "nothing")
	if logs.Len() != 0 {
		t.Errorf("expected no entries, got %d", logs.Len())
	}
}

func TestBackend_FiltersApply(t *testing.T) {
	b, logs := newObserved(zapcore.InfoLevel)

	b.Write(platform.LevelDebug, "x", "%s", "below zap level")
	if logs.Len() != 0 {
		t.Fatalf("zap level should drop debug, got %d entries", logs.Len())
	}

	b.SetLevel("x", platform.LevelWarn)
	b.Write(platform.LevelInfo, "x", "%s", "below platform level")
	if logs.Len() != 0 {
		t.Fatalf("platform filter should drop info, got %d entries", logs.Len())
	}

	b.Write(platform.LevelInfo, "y", "%s", "kept")
	if logs.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", logs.Len())
	}
}

func TestBackend_EmptyTagKey(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewWithTagKey(zap.New(core), "")

	b.Write(platform.LevelInfo, "wifi", "%s", "m")
	if len(logs.All()[0].Context) != 0 {
		t.Errorf("expected no fields, got %v", logs.All()[0].Context)
	}
}

func TestBackend_NilLogger(t *testing.T) {
	b := New(nil)
	b.Write(platform.LevelError, "x", "%s", "discarded")
	if err := b.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}
