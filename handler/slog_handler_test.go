package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/formatter"
)

func newSlogSink() (*Sink, *bufferEmitter) {
	em := &bufferEmitter{}
	return NewSink(nil, formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true}), em), em
}

func TestSlogHandler_Enabled(t *testing.T) {
	s, _ := newSlogSink()
	sh := NewSlogHandler(s, "", core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}

	off := NewSlogHandler(s, "", core.OffLevel)
	if off.Enabled(context.Background(), slog.LevelError+8) {
		t.Error("nothing should be enabled at OffLevel")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	s, em := newSlogSink()
	logger := slog.New(NewSlogHandler(s, "api", core.DebugLevel))

	logger.Info("test message", "key", "value", "count", 42, "err", errors.New("boom"))

	output := em.buf.String()
	if !strings.HasPrefix(output, "[INFO] [api] test message") {
		t.Errorf("unexpected output: %s", output)
	}
	for _, want := range []string{"key=value", "count=42", "err=boom"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	s, em := newSlogSink()
	logger := slog.New(NewSlogHandler(s, "", core.DebugLevel)).With("request_id", "req-123")

	logger.Info("test message")

	if !strings.Contains(em.buf.String(), "request_id=req-123") {
		t.Errorf("Expected 'request_id=req-123' in output, got: %s", em.buf.String())
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	s, em := newSlogSink()
	logger := slog.New(NewSlogHandler(s, "", core.DebugLevel)).WithGroup("auth")

	logger.Info("test message", "user_id", 123, slog.Group("session", "id", "s1", "ttl", 30))

	output := em.buf.String()
	for _, want := range []string{"auth.user_id=123", "auth.session.id=s1", "auth.session.ttl=30"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	s, em := newSlogSink()
	logger := slog.New(NewSlogHandler(s, "", core.InfoLevel))

	logger.Debug("should not appear")
	if em.buf.Len() > 0 {
		t.Error("Debug message should not have been logged")
	}

	logger.Info("should appear")
	if !strings.Contains(em.buf.String(), "should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", em.buf.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.CriticalLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
