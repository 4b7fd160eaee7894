// Package core defines the types shared by every layer of platformlog.
//
// Level is the front-end severity scale, ordered from TraceLevel (most
// verbose) to OffLevel (disabled). Handlers that forward to another
// logging facility translate it into that facility's own scale.
//
// Entry is a single log record: level, logger name, message, fields and
// optional caller. Entries are pooled; the logger hands an Entry to its
// handler for the duration of one Handle call and returns it to the pool
// right after, so handlers must copy anything they want to keep.
//
// Field stores common values (int, bool, time.Time, time.Duration) in
// fixed numeric slots so they never escape to the heap. Any is the
// fallback for arbitrary types and allocates.
package core
