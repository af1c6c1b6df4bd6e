// Package sloghandler provides an adapter from a logger to
// log/slog.Handler, so code written against the standard library's
// structured logging emits lines in the rslog format.
package sloghandler
