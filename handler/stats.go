package handler

import (
	"sync/atomic"

	"github.com/philipp01105/platformlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Forwarded counts records handed to the destination, per level
	Forwarded [core.LevelCount]uint64
	// FailedTotal counts records the formatter could not render
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementForwarded atomically increments the forwarded counter for a
// level. Levels outside the defined range are not counted.
func (s *Stats) IncrementForwarded(level core.Level) {
	if !level.Valid() {
		return
	}
	atomic.AddUint64(&s.Forwarded[level], 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetForwarded returns the forwarded count for a level
func (s *Stats) GetForwarded(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return atomic.LoadUint64(&s.Forwarded[level])
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetProcessed returns the forwarded count across all levels
func (s *Stats) GetProcessed() uint64 {
	var total uint64
	for i := range s.Forwarded {
		total += atomic.LoadUint64(&s.Forwarded[i])
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.Forwarded {
		atomic.StoreUint64(&s.Forwarded[i], 0)
	}
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Forwarded      map[core.Level]uint64
	FailedTotal    uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics. Levels with no
// forwarded records are omitted from Forwarded.
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{Forwarded: make(map[core.Level]uint64)}
	for i := range s.Forwarded {
		n := atomic.LoadUint64(&s.Forwarded[i])
		if n == 0 {
			continue
		}
		snap.Forwarded[core.Level(i)] = n
		snap.ProcessedTotal += n
	}
	snap.FailedTotal = s.GetFailed()
	return snap
}
