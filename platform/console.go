package platform

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"
)

// ConsoleConfig holds configuration for the console backend
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Level is the default threshold (default: LevelVerbose). Use
	// Console.SetLevel afterwards to silence everything with LevelNone.
	Level Level
	// Prefix adds the "I (1234) tag: " header ESP_LOGx macros print,
	// where 1234 is milliseconds since the console was created.
	Prefix bool
	// Color wraps each line in the ANSI color of its level.
	Color bool
}

func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == LevelNone {
		cfg.Level = LevelVerbose
	}
}

var levelColors = [...]string{
	LevelError: "\x1b[0;31m",
	LevelWarn:  "\x1b[0;33m",
	LevelInfo:  "\x1b[0;32m",
}

const colorReset = "\x1b[0m"

// Console is a Backend writing one line per record to an io.Writer.
// Writes are serialized; write errors are dropped.
type Console struct {
	*Filter
	writer io.Writer
	prefix bool
	color  bool
	start  time.Time

	mu  sync.Mutex
	buf []byte
}

// NewConsole creates a console backend.
func NewConsole(cfg ConsoleConfig) *Console {
	applyConsoleDefaults(&cfg)
	return &Console{
		Filter: NewFilter(cfg.Level),
		writer: cfg.Writer,
		prefix: cfg.Prefix,
		color:  cfg.Color,
		start:  time.Now(),
		buf:    make([]byte, 0, 256),
	}
}

// Write emits the record if the filter lets it through.
func (c *Console) Write(level Level, tag string, format string, args ...any) {
	if !c.Enabled(tag, level) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.buf[:0]
	color := c.color && int(level) < len(levelColors) && levelColors[level] != ""
	if color {
		b = append(b, levelColors[level]...)
	}
	if c.prefix {
		b = append(b, level.Letter(), ' ', '(')
		b = strconv.AppendInt(b, time.Since(c.start).Milliseconds(), 10)
		b = append(b, ") "...)
		b = append(b, tag...)
		b = append(b, ": "...)
	}
	b = fmt.Appendf(b, format, args...)
	if color {
		// keep the newline outside the color so terminals reset cleanly
		n := len(b)
		if n > 0 && b[n-1] == '\n' {
			b = append(b[:n-1], colorReset+"\n"...)
		} else {
			b = append(b, colorReset...)
		}
	}

	_, _ = c.writer.Write(b)
	if cap(b) <= 64*1024 {
		c.buf = b
	}
}
