package handler

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/formatter"
)

// Emitter delivers one rendered record to a destination. formatted is
// only valid for the duration of the call.
type Emitter interface {
	Emit(entry *core.Entry, formatted []byte)
}

// Sink is the shared scaffolding for destination handlers: a level
// threshold, a formatter with a handler-owned buffer, statistics, and a
// lock policy. Destinations plug in as an Emitter.
//
// The lock policy decides the concurrency contract. With a *sync.Mutex,
// Handle may be called from any number of goroutines. With NullMutex the
// caller must serialize calls.
type Sink struct {
	mu              sync.Locker
	level           atomic.Int32
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	buf             bytes.Buffer
	emitter         Emitter
	stats           *Stats
}

// NewSink creates a sink. A nil formatter selects a TextFormatter.
func NewSink(mu sync.Locker, f formatter.Formatter, e Emitter) *Sink {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	s := &Sink{
		mu:      mu,
		emitter: e,
		stats:   NewStats(),
	}
	s.setFormatter(f)
	s.buf.Grow(256)
	return s
}

func (s *Sink) setFormatter(f formatter.Formatter) {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	s.formatter = f
	// Cache BufferFormatter for the handler-owned buffer path
	s.bufferFormatter, _ = f.(formatter.BufferFormatter)
}

// SetFormatter replaces the formatter. Safe to call while logging when
// the sink uses a real mutex.
func (s *Sink) SetFormatter(f formatter.Formatter) {
	s.mu.Lock()
	s.setFormatter(f)
	s.mu.Unlock()
}

// SetLevel sets the minimum level the sink forwards.
func (s *Sink) SetLevel(level core.Level) {
	s.level.Store(int32(level))
}

// Level returns the minimum level the sink forwards.
func (s *Sink) Level() core.Level {
	return core.Level(s.level.Load())
}

// ShouldLog reports whether a record at level passes the threshold.
// Levels outside the defined range always pass so that the emitter can
// reject them.
func (s *Sink) ShouldLog(level core.Level) bool {
	return !level.Valid() || level >= s.Level()
}

// Handle renders the entry and emits it. Formatter errors are returned
// unchanged and nothing is emitted.
func (s *Sink) Handle(entry *core.Entry) error {
	if !s.ShouldLog(entry.Level) {
		return nil
	}

	s.mu.Lock()
	// deferred so a panicking emitter does not leave the sink locked
	defer s.mu.Unlock()

	var formatted []byte
	if s.bufferFormatter != nil {
		s.buf.Reset()
		s.bufferFormatter.FormatEntry(entry, &s.buf)
		formatted = s.buf.Bytes()
	} else {
		data, err := s.formatter.Format(entry)
		if err != nil {
			s.stats.IncrementFailed()
			return err
		}
		formatted = data
	}

	s.emitter.Emit(entry, formatted)
	s.stats.IncrementForwarded(entry.Level)

	if s.buf.Cap() > 64*1024 { // Don't keep very large buffers
		s.buf = bytes.Buffer{}
	}
	return nil
}

// Flush flushes the emitter when it implements Flusher. Otherwise it
// returns nil without taking the lock.
func (s *Sink) Flush() error {
	f, ok := s.emitter.(Flusher)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return f.Flush()
}

// Close flushes the sink. The sink keeps working afterwards.
func (s *Sink) Close() error {
	return s.Flush()
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
