package formatter

import (
	"bytes"

	"github.com/ristretto-go/rslog/core"
)

// TextFormatter renders entries in the line format consumed by existing
// log readers:
//
//	<timestamp> [<label>]: <text>\n
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// pre-formatted label brackets, indexed by severity
var labelBrackets = [...]string{
	core.ErrorSeverity:   " [error]: ",
	core.WarningSeverity: " [warn]: ",
	core.InfoSeverity:    " [info]: ",
	core.DebugSeverity:   " [debug]: ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(core.AppendTimestamp(buf.AvailableBuffer(), entry.Time))

	if entry.Severity.Valid() {
		buf.WriteString(labelBrackets[entry.Severity])
	} else {
		buf.WriteString(labelBrackets[core.InfoSeverity])
	}

	buf.WriteString(entry.Text)
	buf.WriteByte('\n')
}
