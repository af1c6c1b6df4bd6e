package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSink is returned by ParseSink for unknown input.
var ErrInvalidSink = errors.New("invalid sink")

// Sink selects where formatted lines are written. The numeric values match
// the legacy configuration constants.
type Sink uint8

const (
	// InlineSink is the legacy platform sink; it is treated as FileSink.
	InlineSink Sink = 0
	// FileSink appends lines to the configured log file.
	FileSink Sink = 3
	// ConsoleSink writes lines to standard error.
	ConsoleSink Sink = 5
)

// String returns the name of the sink
func (s Sink) String() string {
	switch s {
	case InlineSink:
		return "inline"
	case FileSink:
		return "file"
	case ConsoleSink:
		return "console"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a defined sink.
func (s Sink) Valid() bool {
	return s == InlineSink || s == FileSink || s == ConsoleSink
}

// IsFile reports whether lines for s end up in the log file.
func (s Sink) IsFile() bool {
	return s == FileSink || s == InlineSink
}

// ParseSink converts a name ("inline", "file", "console") or legacy numeric
// value ("0", "3", "5") to a Sink.
func ParseSink(text string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "inline", "0":
		return InlineSink, nil
	case "file", "3":
		return FileSink, nil
	case "console", "5":
		return ConsoleSink, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSink, text)
	}
}
