// Package zapbackend forwards platform records to a go.uber.org/zap logger.
package zapbackend

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/platformlog/platform"
)

// DefaultTagKey is the field the record's tag is written under.
const DefaultTagKey = "tag"

// Backend writes each record as one zap entry. The platform filter runs
// first; the zap core's own level then applies on top.
type Backend struct {
	*platform.Filter
	l      *zap.Logger
	tagKey string
}

// New creates a backend over l. A nil logger yields a no-op backend.
func New(l *zap.Logger) *Backend {
	return NewWithTagKey(l, DefaultTagKey)
}

// NewWithTagKey lets callers rename the tag field. An empty tag key
// leaves the tag out.
func NewWithTagKey(l *zap.Logger, tagKey string) *Backend {
	if l == nil {
		l = zap.NewNop()
	}
	return &Backend{
		Filter: platform.NewFilter(platform.LevelVerbose),
		l:      l,
		tagKey: tagKey,
	}
}

// Write implements platform.Backend.
func (b *Backend) Write(level platform.Level, tag string, format string, args ...any) {
	if !b.Enabled(tag, level) {
		return
	}
	zl := toZapLevel(level)
	if !b.l.Core().Enabled(zl) {
		return
	}

	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	ce := b.l.Check(zl, msg)
	if ce == nil {
		return
	}
	if b.tagKey == "" {
		ce.Write()
		return
	}
	ce.Write(zap.String(b.tagKey, tag))
}

// Sync flushes the underlying zap logger.
func (b *Backend) Sync() error {
	return b.l.Sync()
}

func toZapLevel(l platform.Level) zapcore.Level {
	switch l {
	case platform.LevelError:
		return zapcore.ErrorLevel
	case platform.LevelWarn:
		return zapcore.WarnLevel
	case platform.LevelInfo:
		return zapcore.InfoLevel
	default:
		// zap has no verbose; debug is its floor
		return zapcore.DebugLevel
	}
}
