// Package core defines the shared types used across rslog.
//
// It provides Severity for threshold filtering, Sink for selecting the
// output, Entry for a single log record and Value, the closed set of
// argument kinds a log call accepts.
//
// Severity is ordered so that lower values are more urgent: a logger
// configured with threshold t emits a message at severity s only when
// s <= t. Labels used in the wire format are "error", "warn", "info" and
// "debug"; any undefined severity is labelled "info".
//
// Value stores integers, floats and booleans inline. Containers (maps,
// slices, arrays, structs) are rendered as a nested, multi-line dump.
// Any classifies arbitrary Go values into the union; what it cannot
// classify is reported by Stringify as ErrUnsupportedKind instead of
// being rendered as empty text.
//
// Timestamps are fixed width (TimestampWidth bytes) so that log lines
// sort lexicographically.
package core
