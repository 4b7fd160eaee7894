// Package formatter defines how log entries are rendered into bytes.
//
// Formatter returns a fresh []byte per entry. BufferFormatter renders into
// a caller-owned bytes.Buffer; sinks that keep one buffer per handler and
// reuse it under their own lock check for it at construction time and
// prefer it, so the steady-state write path does not allocate.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces. They rely on Append-style functions (time.AppendFormat,
// strconv.AppendInt) rather than fmt.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
