package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap/zapcore"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/formatter"
	"github.com/ristretto-go/rslog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
}

// ConsoleHandler writes one formatted line per entry. Writes are
// serialized by zapcore.Lock, so lines from concurrent callers never
// interleave.
type ConsoleHandler struct {
	ws              zapcore.WriteSyncer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	closed          atomic.Bool
	bufPool         sync.Pool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		ws:        zapcore.Lock(zapcore.AddSync(cfg.Writer)),
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		bufPool: sync.Pool{
			New: func() interface{} {
				b := new(bytes.Buffer)
				b.Grow(256)
				return b
			},
		},
	}

	// Cache BufferFormatter for the pooled-buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Handle writes a log entry. After Close the entry is dropped.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		h.stats.IncrementSkipped()
		return nil
	}

	if h.bufferFormatter != nil {
		buf := h.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufferFormatter.FormatEntry(entry, buf)
		_, err := h.ws.Write(buf.Bytes())
		h.bufPool.Put(buf)
		h.stats.Record(err)
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	_, err = h.ws.Write(data)
	h.stats.Record(err)
	return err
}

// Sync flushes the underlying writer if it buffers.
func (h *ConsoleHandler) Sync() error {
	return h.ws.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The underlying writer is not closed: it is
// usually a process stream shared with other code.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
