package logger

import (
	"fmt"
	"os"

	"github.com/philipp01105/platformlog/core"
	"github.com/philipp01105/platformlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is the main logging interface (immutable)
type Logger struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for getCaller
	}
}

// WithName sets the logger name carried by every entry
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		name:          b.name,
		handler:       b.handler,
		level:         b.level,
		fields:        fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// Named creates a new Logger sharing the handler under another name
func (l *Logger) Named(name string) *Logger {
	c := *l
	c.name = name
	return &c
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether an entry at level would reach the handler
func (l *Logger) Enabled(level core.Level) bool {
	return l.handler != nil && l.level != core.OffLevel && level >= l.level
}

// Log logs a message at the specified level. Levels outside the defined
// range skip the level check and go to the handler, which rejects them.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level.Valid() && !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

// log builds a pooled entry, hands it to the handler and takes it back.
// Handlers are synchronous, so the entry is free again once Handle returns.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = level
	entry.LoggerName = l.name
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	// Handler errors have nowhere to go; logging must not fail the caller.
	_ = l.handler.Handle(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Fatal logs a critical message, flushes and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	if l.Enabled(core.CriticalLevel) {
		l.log(core.CriticalLevel, msg, fields)
	}
	_ = l.Flush()
	osExit(1)
}

// Panic logs a critical message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	if l.Enabled(core.CriticalLevel) {
		l.log(core.CriticalLevel, msg, fields)
	}
	panic(msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a critical message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.Enabled(core.CriticalLevel) {
		l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
	}
	_ = l.Flush()
	osExit(1)
}

// Panicf logs a critical message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.Enabled(core.CriticalLevel) {
		l.log(core.CriticalLevel, msg, nil)
	}
	panic(msg)
}

// Flush flushes the handler when it buffers anything
func (l *Logger) Flush() error {
	if f, ok := l.handler.(handler.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
