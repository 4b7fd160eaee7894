package handler

import "sync"

// NullMutex is a sync.Locker that does nothing. Sinks built with it
// rely on the caller to serialize Handle, which suits single-goroutine
// programs where a real mutex would be pure overhead.
type NullMutex struct{}

// Lock does nothing.
func (NullMutex) Lock() {}

// Unlock does nothing.
func (NullMutex) Unlock() {}

var (
	_ sync.Locker = NullMutex{}
	_ sync.Locker = (*sync.Mutex)(nil)
)
