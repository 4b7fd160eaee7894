package logger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrLoggerExists is returned by Register when the name is already taken.
var ErrLoggerExists = errors.New("logger: name already registered")

var registry = struct {
	sync.RWMutex
	loggers map[string]*Logger
}{loggers: make(map[string]*Logger)}

// Register makes l retrievable by its name.
func Register(l *Logger) error {
	if l == nil {
		return errors.New("logger: cannot register nil logger")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.loggers[l.name]; ok {
		return fmt.Errorf("%w: %q", ErrLoggerExists, l.name)
	}
	registry.loggers[l.name] = l
	return nil
}

// Get returns the registered logger with the given name, or nil.
func Get(name string) *Logger {
	registry.RLock()
	defer registry.RUnlock()
	return registry.loggers[name]
}

// Names returns the registered logger names in sorted order.
func Names() []string {
	registry.RLock()
	names := make([]string, 0, len(registry.loggers))
	for name := range registry.loggers {
		names = append(names, name)
	}
	registry.RUnlock()
	sort.Strings(names)
	return names
}

// Drop removes a logger from the registry. The logger itself keeps working.
func Drop(name string) {
	registry.Lock()
	delete(registry.loggers, name)
	registry.Unlock()
}

// DropAll empties the registry.
func DropAll() {
	registry.Lock()
	registry.loggers = make(map[string]*Logger)
	registry.Unlock()
}
