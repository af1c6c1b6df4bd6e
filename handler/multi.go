package handler

import (
	"go.uber.org/multierr"

	"github.com/ristretto-go/rslog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are ignored.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle processes a log entry by sending it to all handlers. Every handler
// sees the entry even if an earlier one fails; the failures are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Stats sums the statistics of every child that provides them.
func (h *MultiHandler) Stats() Snapshot {
	var total Snapshot
	for _, handler := range h.handlers {
		if sp, ok := handler.(StatsProvider); ok {
			total = total.Add(sp.Stats())
		}
	}
	return total
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
