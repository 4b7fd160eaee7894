package handler

import (
	"github.com/hashicorp/go-multierror"

	"github.com/philipp01105/platformlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle sends the entry to every handler. A failing handler does not
// stop the others; all errors are returned together.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var result *multierror.Error
	for _, handler := range h.handlers {
		if err := handler.Handle(entry); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Flush flushes every handler that implements Flusher
func (h *MultiHandler) Flush() error {
	var result *multierror.Error
	for _, handler := range h.handlers {
		if f, ok := handler.(Flusher); ok {
			if err := f.Flush(); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	return result.ErrorOrNil()
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var result *multierror.Error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
