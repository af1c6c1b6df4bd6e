// Package consolehandler provides the console sink: it writes formatted
// log lines to standard error, or to any io.Writer given in ConsoleConfig.
//
// The writer is wrapped with zapcore.AddSync and zapcore.Lock, so a
// handler may be shared by any number of goroutines without interleaving
// lines. Write errors are returned to the caller and counted in Stats;
// the logger treats console output as best effort and drops them.
package consolehandler
