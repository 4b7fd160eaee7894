// Package platformtest provides a recording platform.Backend for tests.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/philipp01105/platformlog/platform"
)

// Call is one captured Write.
type Call struct {
	Level  platform.Level
	Tag    string
	Format string
	Args   []any
}

// Text renders the call the way a printf-style backend would.
func (c Call) Text() string {
	return fmt.Sprintf(c.Format, c.Args...)
}

// Recorder captures every Write call, filtered or not. Attach a Filter to
// emulate a backend that drops records below its threshold; dropped calls
// are still counted by Attempts.
type Recorder struct {
	Filter *platform.Filter

	mu       sync.Mutex
	calls    []Call
	attempts int
}

// NewRecorder returns a recorder without filtering.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Write implements platform.Backend.
func (r *Recorder) Write(level platform.Level, tag string, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts++
	if r.Filter != nil && !r.Filter.Enabled(tag, level) {
		return
	}
	r.calls = append(r.calls, Call{
		Level:  level,
		Tag:    tag,
		Format: format,
		Args:   append([]any(nil), args...),
	})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Attempts returns the number of Write invocations, including dropped ones.
func (r *Recorder) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

// Last returns the most recent call. ok is false when nothing was recorded.
func (r *Recorder) Last() (c Call, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets every call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.attempts = 0
	r.mu.Unlock()
}
