package platform

import (
	"sync"
	"sync/atomic"
)

// Filter is a backend-side severity threshold: a default level plus
// optional per-tag overrides. A record passes when its level is not
// LevelNone and does not exceed the threshold of its tag.
// The zero value is unusable; use NewFilter.
type Filter struct {
	def  atomic.Int32
	mu   sync.RWMutex
	tags map[string]Level
	// hasTags lets Enabled skip the read lock while no override exists.
	hasTags atomic.Bool
}

// NewFilter returns a filter with the given default level.
func NewFilter(def Level) *Filter {
	f := &Filter{tags: make(map[string]Level)}
	f.def.Store(int32(def))
	return f
}

// SetDefaultLevel changes the threshold applied to tags without an override.
func (f *Filter) SetDefaultLevel(level Level) {
	f.def.Store(int32(level))
}

// DefaultLevel returns the threshold applied to tags without an override.
func (f *Filter) DefaultLevel() Level {
	return Level(f.def.Load())
}

// SetLevel sets the threshold for one tag. The tag "*" changes the
// default instead, as esp_log_level_set does.
func (f *Filter) SetLevel(tag string, level Level) {
	if tag == "*" {
		f.SetDefaultLevel(level)
		return
	}
	f.mu.Lock()
	f.tags[tag] = level
	f.hasTags.Store(true)
	f.mu.Unlock()
}

// ClearLevel removes a per-tag override.
func (f *Filter) ClearLevel(tag string) {
	f.mu.Lock()
	delete(f.tags, tag)
	f.hasTags.Store(len(f.tags) > 0)
	f.mu.Unlock()
}

// Level returns the threshold in effect for tag.
func (f *Filter) Level(tag string) Level {
	if f.hasTags.Load() {
		f.mu.RLock()
		l, ok := f.tags[tag]
		f.mu.RUnlock()
		if ok {
			return l
		}
	}
	return f.DefaultLevel()
}

// Enabled reports whether a record at level for tag should be emitted.
func (f *Filter) Enabled(tag string, level Level) bool {
	if level <= LevelNone {
		return false
	}
	return level <= f.Level(tag)
}
