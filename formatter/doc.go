// Package formatter defines how log entries are serialized into bytes.
//
// It exposes Formatter, which returns a []byte, and the optional
// BufferFormatter interface, which appends into a caller-provided buffer.
// The console and file handlers check for BufferFormatter at construction
// time and format into their own pooled buffers when it is available.
//
// TextFormatter produces the one-line wire format
//
//	2026-01-15 12:30:45.1235000000 [warn]: low memory
//
// with a fixed-width timestamp and the lower-case severity label. It uses a
// pooled bytes.Buffer and core.AppendTimestamp so that formatting does not
// allocate beyond the returned slice.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
