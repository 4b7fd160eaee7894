package logger

import (
	"github.com/philipp01105/platformlog/handler/platformhandler"
	"github.com/philipp01105/platformlog/platform"
)

// PlatformMT creates a logger named name that forwards to backend through a
// mutex-guarded platform handler, and registers it.
func PlatformMT(name string, backend platform.Backend) (*Logger, error) {
	return newPlatformLogger(name, platformhandler.NewMT(platformhandler.Config{Backend: backend}))
}

// PlatformST is like PlatformMT but the handler does no locking. Use it only
// when a single goroutine logs through the returned logger.
func PlatformST(name string, backend platform.Backend) (*Logger, error) {
	return newPlatformLogger(name, platformhandler.NewST(platformhandler.Config{Backend: backend}))
}

func newPlatformLogger(name string, h *platformhandler.PlatformHandler) (*Logger, error) {
	l := NewBuilder().
		WithName(name).
		WithHandler(h).
		WithLevel(TraceLevel).
		Build()
	if err := Register(l); err != nil {
		return nil, err
	}
	return l, nil
}
