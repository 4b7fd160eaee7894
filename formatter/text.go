package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/platformlog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] [wifi] connected ssid=home
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWithPool(entry, f.FormatEntry), nil
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [core.LevelCount]string{
	core.TraceLevel:    "[TRACE] ",
	core.DebugLevel:    "[DEBUG] ",
	core.InfoLevel:     "[INFO] ",
	core.WarnLevel:     "[WARN] ",
	core.ErrorLevel:    "[ERROR] ",
	core.CriticalLevel: "[CRITICAL] ",
	core.OffLevel:      "[OFF] ",
}

// FormatEntry writes the formatted entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if !f.DisableTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if entry.LoggerName != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.LoggerName)
		buf.WriteString("] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendValue(buf.AvailableBuffer()))
	}

	buf.WriteByte('\n')
}
