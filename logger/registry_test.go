package logger

import (
	"errors"
	"reflect"
	"testing"

	"github.com/philipp01105/platformlog/handler/platformhandler"
	"github.com/philipp01105/platformlog/platform"
	"github.com/philipp01105/platformlog/platform/platformtest"
)

func TestRegistry(t *testing.T) {
	DropAll()
	defer DropAll()

	a := NewBuilder().WithName("a").Build()
	if err := Register(a); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if Get("a") != a {
		t.Error("Get did not return the registered logger")
	}
	if Get("missing") != nil {
		t.Error("Expected nil for an unknown name")
	}

	err := Register(NewBuilder().WithName("a").Build())
	if !errors.Is(err, ErrLoggerExists) {
		t.Errorf("Expected ErrLoggerExists, got %v", err)
	}
	if Get("a") != a {
		t.Error("A failed Register must not replace the existing logger")
	}

	if err := Register(nil); err == nil {
		t.Error("Expected an error registering nil")
	}

	if err := Register(NewBuilder().WithName("b").Build()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}

	Drop("a")
	if Get("a") != nil {
		t.Error("Expected 'a' to be dropped")
	}
	if err := Register(NewBuilder().WithName("a").Build()); err != nil {
		t.Errorf("Expected name to be reusable after Drop, got %v", err)
	}

	DropAll()
	if len(Names()) != 0 {
		t.Errorf("Expected empty registry, got %v", Names())
	}
}

func TestPlatformFactories(t *testing.T) {
	DropAll()
	defer DropAll()

	rec := platformtest.NewRecorder()
	mt, err := PlatformMT("net", rec)
	if err != nil {
		t.Fatalf("PlatformMT: %v", err)
	}
	st, err := PlatformST("ui", rec)
	if err != nil {
		t.Fatalf("PlatformST: %v", err)
	}

	if Get("net") != mt || Get("ui") != st {
		t.Fatal("Factories must register their loggers")
	}

	mt.Trace("link up")
	st.Critical("frame drop")

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("Expected 2 calls, got %d", len(calls))
	}
	if calls[0].Tag != "net" || calls[0].Level != platform.LevelVerbose {
		t.Errorf("Unexpected first call %+v", calls[0])
	}
	if calls[1].Tag != "ui" || calls[1].Level != platform.LevelError {
		t.Errorf("Unexpected second call %+v", calls[1])
	}
	if calls[0].Format != "%s" {
		t.Errorf("Expected opaque format, got %q", calls[0].Format)
	}

	if _, ok := mt.handler.(*platformhandler.PlatformHandler); !ok {
		t.Errorf("Expected a platform handler, got %T", mt.handler)
	}

	if _, err := PlatformMT("net", rec); !errors.Is(err, ErrLoggerExists) {
		t.Errorf("Expected ErrLoggerExists for a duplicate name, got %v", err)
	}
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	if orig.Level() != InfoLevel {
		t.Errorf("Expected default level INFO, got %s", orig.Level())
	}
	if _, ok := orig.handler.(*platformhandler.PlatformHandler); !ok {
		t.Errorf("Expected default handler to be a platform handler, got %T", orig.handler)
	}

	rec := platformtest.NewRecorder()
	SetDefault(NewBuilder().
		WithHandler(platformhandler.NewMT(platformhandler.Config{Backend: rec})).
		WithLevel(TraceLevel).
		Build())

	Trace("a")
	Debugf("b %d", 1)
	Info("c")
	Warnf("d")
	Error("e")
	Criticalf("f %s", "x")
	With(String("k", "v")).Info("g")
	if err := Flush(); err != nil {
		t.Errorf("Flush: %v", err)
	}

	if rec.Len() != 7 {
		t.Fatalf("Expected 7 calls, got %d", rec.Len())
	}
	last, _ := rec.Last()
	if last.Text() != "[INFO] g k=v\n" {
		t.Errorf("Unexpected text %q", last.Text())
	}
}
