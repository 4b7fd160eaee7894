// Package logrusbackend forwards platform records to a logrus logger.
package logrusbackend

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/platformlog/platform"
)

// DefaultTagKey is the field the record's tag is written under.
const DefaultTagKey = "tag"

// Backend writes each record as one logrus entry with the tag as a field.
type Backend struct {
	*platform.Filter
	l      *logrus.Logger
	tagKey string
}

// New creates a backend over l. A nil logger uses logrus.StandardLogger().
func New(l *logrus.Logger) *Backend {
	return NewWithTagKey(l, DefaultTagKey)
}

// NewWithTagKey lets callers rename the tag field. An empty tag key
// leaves the tag out.
func NewWithTagKey(l *logrus.Logger, tagKey string) *Backend {
	if l == nil {
		l = logrus.StandardLogger()
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
	ll := toLogrusLevel(level)
	if !b.l.IsLevelEnabled(ll) {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	if b.tagKey == "" {
		b.l.Log(ll, msg)
		return
	}
	b.l.WithField(b.tagKey, tag).Log(ll, msg)
}

func toLogrusLevel(l platform.Level) logrus.Level {
	switch l {
	case platform.LevelError:
		return logrus.ErrorLevel
	case platform.LevelWarn:
		return logrus.WarnLevel
	case platform.LevelInfo:
		return logrus.InfoLevel
	case platform.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
