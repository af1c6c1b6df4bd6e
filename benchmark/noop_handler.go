package benchmark

import (
	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/handler"
)

// noopHandler accepts entries without formatting them, isolating the
// logger's own filtering and rendering cost.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Text)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
