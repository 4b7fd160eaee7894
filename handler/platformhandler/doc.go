// Package platformhandler forwards log entries to a platform logging
// backend, translating front-end levels into the backend's scale.
//
// Each Handle call renders the entry with the configured formatter,
// looks up the backend level in a fixed LevelTable and calls the
// backend's Write exactly once with the entry's logger name as tag and
// the rendered text behind a "%s" format. Nothing is buffered and
// nothing runs in the background. Backend failures are the backend's
// business and never surface here.
//
// The backend scale is coarser than the front-end's, so the default
// table is many-to-one: CriticalLevel and ErrorLevel both become
// platform.LevelError, and OffLevel becomes platform.LevelNone.
//
// An entry whose level is outside the defined range is a programming
// error. Translation panics with a *LevelRangeError instead of guessing.
//
// Two variants exist, picked when the handler is built: NewMT guards
// Handle with a mutex so one handler can serve many goroutines, NewST
// uses handler.NullMutex and leaves serialization to the caller.
package platformhandler
