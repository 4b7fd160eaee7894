package platform

import (
	"fmt"
	"strings"
)

// Level is the backend's native severity. Larger values are more verbose.
type Level int8

const (
	// LevelNone emits nothing
	LevelNone Level = iota
	// LevelError for unrecoverable conditions
	LevelError
	// LevelWarn for recoverable conditions
	LevelWarn
	// LevelInfo for normal operation
	LevelInfo
	// LevelDebug for diagnostics
	LevelDebug
	// LevelVerbose for everything else
	LevelVerbose
)

var levelNames = [...]string{
	LevelNone:    "NONE",
	LevelError:   "ERROR",
	LevelWarn:    "WARN",
	LevelInfo:    "INFO",
	LevelDebug:   "DEBUG",
	LevelVerbose: "VERBOSE",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelVerbose
}

// String returns the upper-case level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Letter returns the single-letter tag printed in console lines.
func (l Level) Letter() byte {
	if !l.Valid() {
		return '?'
	}
	return levelNames[l][0]
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return LevelNone, nil
	case "ERROR", "E":
		return LevelError, nil
	case "WARN", "WARNING", "W":
		return LevelWarn, nil
	case "INFO", "I":
		return LevelInfo, nil
	case "DEBUG", "D":
		return LevelDebug, nil
	case "VERBOSE", "V":
		return LevelVerbose, nil
	default:
		return LevelNone, fmt.Errorf("platform: unknown level %q", s)
	}
}
