// Package handler provides the Handler interface and the pieces shared by
// the built-in sinks.
//
// A Handler receives a fully rendered core.Entry and writes it somewhere.
// All handlers are synchronous: Handle returns once the line has been
// written (or the write has failed).
//
// Built-in handlers:
//
//   - consolehandler writes formatted lines to standard error (or any
//     io.Writer) through a locked zapcore.WriteSyncer.
//   - filehandler appends formatted lines to a file, opening and closing
//     the file for every entry.
//   - MultiHandler fans out a single entry to multiple child handlers and
//     combines their errors with multierr.
//   - sloghandler and zaphandler adapt log/slog and zap onto a logger.
//
// Sinks count processed, failed and skipped writes via the Stats type,
// which can be queried at runtime through StatsProvider.
package handler
