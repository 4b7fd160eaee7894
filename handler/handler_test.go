package handler

import (
	"bytes"
	"errors"
	"sync"

	"github.com/philipp01105/platformlog/core"
)

// bufferEmitter appends every formatted record to a buffer.
type bufferEmitter struct {
	buf     bytes.Buffer
	names   []string
	flushes int
}

func (e *bufferEmitter) Emit(entry *core.Entry, formatted []byte) {
	e.buf.Write(formatted)
	e.names = append(e.names, entry.LoggerName)
}

type flushingEmitter struct {
	bufferEmitter
	err error
}

func (e *flushingEmitter) Flush() error {
	e.flushes++
	return e.err
}

// panicEmitter rejects every record.
type panicEmitter struct{}

func (panicEmitter) Emit(*core.Entry, []byte) {
	panic("rejected")
}

type failingFormatter struct{}

var errFormat = errors.New("cannot render")

func (failingFormatter) Format(*core.Entry) ([]byte, error) {
	return nil, errFormat
}

// countingLocker records how often the sink locks.
type countingLocker struct {
	mu    sync.Mutex
	locks int
}

func (l *countingLocker) Lock() {
	l.mu.Lock()
	l.locks++
}

func (l *countingLocker) Unlock() {
	l.mu.Unlock()
}

func newEntry(level core.Level, msg string) *core.Entry {
	e := core.GetEntry()
	e.Level = level
	e.Message = msg
	return e
}
