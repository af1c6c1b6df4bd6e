package handler

import (
	"github.com/ristretto-go/rslog/core"
)

// Handler defines the interface for log handlers. Entries are pooled, so a
// handler must not keep the entry after Handle returns.
type Handler interface {
	// Handle writes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes.
type StatsProvider interface {
	Stats() Snapshot
}
