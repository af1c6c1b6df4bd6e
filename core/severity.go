package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSeverity is returned by ParseSeverity for unknown input.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity represents the urgency of a log message. Lower values are more
// urgent; a logger emits a message only if its severity is not greater
// than the configured threshold.
type Severity uint8

const (
	// ErrorSeverity for failures
	ErrorSeverity Severity = iota + 1
	// WarningSeverity for unusual but non-fatal conditions
	WarningSeverity
	// InfoSeverity for general informational messages (default threshold)
	InfoSeverity
	// DebugSeverity for detailed debugging information
	DebugSeverity
)

// labels indexed by severity; index 0 is unused.
var labels = [...]string{
	ErrorSeverity:   "error",
	WarningSeverity: "warn",
	InfoSeverity:    "info",
	DebugSeverity:   "debug",
}

// Label returns the text used inside the brackets of a log line. Unknown
// values fall back to "info".
func (s Severity) Label() string {
	if s.Valid() {
		return labels[s]
	}
	return labels[InfoSeverity]
}

// String returns the label of the severity
func (s Severity) String() string {
	return s.Label()
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	return s >= ErrorSeverity && s <= DebugSeverity
}

// Enables reports whether a message at severity msg passes a threshold of s.
func (s Severity) Enables(msg Severity) bool {
	return msg <= s
}

// ParseSeverity converts a name ("error", "warn", "warning", "info",
// "debug") or a numeric rank ("1".."4") to a Severity.
func ParseSeverity(text string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "error", "1":
		return ErrorSeverity, nil
	case "warn", "warning", "2":
		return WarningSeverity, nil
	case "info", "3":
		return InfoSeverity, nil
	case "debug", "4":
		return DebugSeverity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, text)
	}
}
