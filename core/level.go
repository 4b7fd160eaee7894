package core

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for the most verbose diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures the process may not survive
	CriticalLevel
	// OffLevel disables logging when used as a threshold
	OffLevel
)

// LevelCount is the number of defined levels, OffLevel included.
const LevelCount = int(OffLevel) + 1

var levelNames = [LevelCount]string{
	TraceLevel:    "TRACE",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	OffLevel:      "OFF",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && int(l) < LevelCount
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}
