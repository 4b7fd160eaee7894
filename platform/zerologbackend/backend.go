// Package zerologbackend forwards platform records to a zerolog logger.
package zerologbackend

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/philipp01105/platformlog/platform"
)

// Backend writes each record as one zerolog event with the tag as a field.
type Backend struct {
	*platform.Filter
	l      zerolog.Logger
	tagKey string
}

// New creates a backend over l.
func New(l zerolog.Logger) *Backend {
	return &Backend{
		Filter: platform.NewFilter(platform.LevelVerbose),
		l:      l,
		tagKey: "tag",
	}
}

// WithTagKey returns a copy writing the tag under key. An empty key
// leaves the tag out.
func (b *Backend) WithTagKey(key string) *Backend {
	return &Backend{Filter: b.Filter, l: b.l, tagKey: key}
}

// Write implements platform.Backend.
func (b *Backend) Write(level platform.Level, tag string, format string, args ...any) {
	if !b.Enabled(tag, level) {
		return
	}
	// WithLevel returns nil when zerolog's own level disables the event;
	// calls on a nil event are no-ops.
	ev := b.l.WithLevel(toZerologLevel(level))
	if ev == nil {
		return
	}
	if b.tagKey != "" {
		ev = ev.Str(b.tagKey, tag)
	}
	ev.Msg(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func toZerologLevel(l platform.Level) zerolog.Level {
	switch l {
	case platform.LevelError:
		return zerolog.ErrorLevel
	case platform.LevelWarn:
		return zerolog.WarnLevel
	case platform.LevelInfo:
		return zerolog.InfoLevel
	case platform.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
