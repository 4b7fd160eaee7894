package handler

import (
	"github.com/philipp01105/platformlog/core"
)

// Handler defines the interface for log handlers. Handle runs
// synchronously and must not retain entry after it returns.
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close flushes the handler and releases resources
	Close() error
}

// Flusher is implemented by handlers with pending output to push.
type Flusher interface {
	Flush() error
}

// StatsProvider is implemented by handlers that count what they forward.
type StatsProvider interface {
	Stats() Snapshot
}
