package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/platformlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry appends the formatted entry to buf.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for the formatter default)
	TimestampFormat string
	// DisableTimestamp omits the time entirely. Useful when the destination
	// stamps records itself.
	DisableTimestamp bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWithPool renders through fn into a pooled buffer and returns a copy.
func formatWithPool(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
