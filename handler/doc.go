// Package handler provides the Handler interface, the generic Sink that
// destination handlers are built from, and the handlers that compose
// other handlers.
//
// Every handler here is synchronous: Handle runs on the caller's
// goroutine and returns once the destination has the record. Handlers
// borrow the *core.Entry for the duration of Handle only.
//
// Sink holds what destination handlers share: a level threshold, a
// formatter rendering into a handler-owned buffer, Stats, and a lock
// policy. The lock policy is a sync.Locker chosen at construction:
// *sync.Mutex for handlers shared between goroutines, NullMutex when the
// caller already serializes logging. A destination only implements
// Emitter.
//
// Composite handlers:
//
//   - MultiHandler fans out a single entry to multiple child handlers and
//     joins their errors with go-multierror.
//   - SlogHandler adapts any Handler to log/slog.Handler, allowing slog to
//     serve as the front-end.
package handler
