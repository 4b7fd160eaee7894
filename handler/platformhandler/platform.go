package platformhandler

import (
	"sync"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/formatter"
	"github.com/philipp01105/platformlog/handler"
	"github.com/philipp01105/platformlog/platform"
)

// tagFormat keeps rendered text opaque to the backend's printf.
const tagFormat = "%s"

// Config holds configuration for platform handlers
type Config struct {
	// Backend receives the records (default: platform console on stdout)
	Backend platform.Backend
	// Formatter renders records (default: TextFormatter without timestamp)
	Formatter formatter.Formatter
	// Level is the handler threshold (default: TraceLevel)
	Level core.Level
	// Levels overrides the translation table (default: DefaultLevels).
	// The table is copied; constructors panic if it fails Validate.
	Levels *LevelTable
	// SingleThreaded selects the unsynchronized variant in New
	SingleThreaded bool
}

func applyDefaults(cfg *Config) {
	if cfg.Backend == nil {
		cfg.Backend = platform.NewConsole(platform.ConsoleConfig{})
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true})
	}
	if cfg.Levels == nil {
		t := DefaultLevels
		cfg.Levels = &t
	}
}

// PlatformHandler is a handler.Sink whose destination is a platform backend.
type PlatformHandler struct {
	*handler.Sink
	emitter *backendEmitter
}

// backendEmitter does the translation and the single backend call. It
// has no Flush: the backend owns its buffering.
type backendEmitter struct {
	levels  LevelTable
	backend platform.Backend
}

func (e *backendEmitter) Emit(entry *core.Entry, formatted []byte) {
	level := e.levels.Translate(entry.Level)
	// string() copies, so the backend may keep the text after we return
	e.backend.Write(level, entry.LoggerName, tagFormat, string(formatted))
}

// New returns NewST(cfg) when cfg.SingleThreaded is set and NewMT(cfg)
// otherwise.
func New(cfg Config) *PlatformHandler {
	if cfg.SingleThreaded {
		return NewST(cfg)
	}
	return NewMT(cfg)
}

// NewMT creates a handler that is safe for concurrent use.
func NewMT(cfg Config) *PlatformHandler {
	return newPlatformHandler(&sync.Mutex{}, cfg)
}

// NewST creates a handler without locking. Callers must not invoke
// Handle from more than one goroutine at a time.
func NewST(cfg Config) *PlatformHandler {
	return newPlatformHandler(handler.NullMutex{}, cfg)
}

func newPlatformHandler(mu sync.Locker, cfg Config) *PlatformHandler {
	applyDefaults(&cfg)
	em := &backendEmitter{
		levels:  *cfg.Levels,
		backend: cfg.Backend,
	}
	// checked on the copy, so later writes to *cfg.Levels cannot matter
	if err := em.levels.Validate(); err != nil {
		panic(err.Error())
	}
	h := &PlatformHandler{
		Sink:    handler.NewSink(mu, cfg.Formatter, em),
		emitter: em,
	}
	h.SetLevel(cfg.Level)
	return h
}

// Translate returns the backend level this handler uses for l.
func (h *PlatformHandler) Translate(l core.Level) platform.Level {
	return h.emitter.levels.Translate(l)
}

// Backend returns the backend records are forwarded to.
func (h *PlatformHandler) Backend() platform.Backend {
	return h.emitter.backend
}
