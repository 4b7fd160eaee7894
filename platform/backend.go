package platform

// Backend is the platform's write primitive. format follows fmt rules;
// callers that pass pre-rendered text use "%s" so the text is never
// re-interpreted. Implementations must be safe for concurrent use and
// must not retain args past the call unless they copy them.
type Backend interface {
	Write(level Level, tag string, format string, args ...any)
}

// LevelController is implemented by backends that expose their internal
// severity filter.
type LevelController interface {
	SetLevel(tag string, level Level)
	Level(tag string) Level
}
