package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/handler"
	"github.com/ristretto-go/rslog/handler/consolehandler"
	"github.com/ristretto-go/rslog/handler/filehandler"
	"github.com/ristretto-go/rslog/pathutil"
)

// DefaultEnvPrefix is the prefix used by OptionsFromEnv when none is given.
const DefaultEnvPrefix = "RSLOG_"

// Option configures a Logger. Options are applied by New and Configure
// while the logger's lock is held.
type Option func(*Logger)

// WithLog sets the log file path; a leading "~" is expanded.
func WithLog(path string) Option {
	return func(l *Logger) {
		l.file.SetFilename(pathutil.Expand(path))
	}
}

// WithSink selects where lines are written.
func WithSink(sink core.Sink) Option {
	return func(l *Logger) {
		l.sink = sink
	}
}

// WithMinSeverity sets the threshold; less urgent messages are dropped.
func WithMinSeverity(sev core.Severity) Option {
	return func(l *Logger) {
		l.minSeverity = sev
	}
}

// WithConsoleWriter replaces standard error as the console destination.
func WithConsoleWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w})
	}
}

// WithRotation enables size-based rotation of the log file, keeping at
// most maxBackups rotated files (0 keeps all).
func WithRotation(maxSize int64, maxBackups int) Option {
	return func(l *Logger) {
		l.file = filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:   l.file.Filename(),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		})
	}
}

// WithHandler adds handlers that receive every emitted entry in addition
// to the configured sink.
func WithHandler(handlers ...handler.Handler) Option {
	return func(l *Logger) {
		l.extra = handler.NewMultiHandler(handlers...)
	}
}

// WithErrorOutput sets where the logger reports its own failures, such as
// arguments that cannot be rendered. The writer is locked for concurrent
// use. Defaults to standard error.
func WithErrorOutput(ws zapcore.WriteSyncer) Option {
	return func(l *Logger) {
		l.errOut = zapcore.Lock(ws)
	}
}

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithPathDiscovery replaces pathutil.DefaultLogPath as the source of the
// log file used by Configure when no path is set.
func WithPathDiscovery(discover func() (string, error)) Option {
	return func(l *Logger) {
		l.discover = discover
	}
}

// OptionsFromMap converts textual settings into options. Recognized keys
// are "type" (sink), "log" (path) and "level" (severity); other keys are
// ignored. An unparsable sink or severity is an error.
func OptionsFromMap(settings map[string]string) ([]Option, error) {
	var opts []Option

	if v, ok := settings["type"]; ok {
		sink, err := core.ParseSink(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSink(sink))
	}

	if v, ok := settings["log"]; ok {
		opts = append(opts, WithLog(v))
	}

	if v, ok := settings["level"]; ok {
		sev, err := core.ParseSeverity(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMinSeverity(sev))
	}

	return opts, nil
}

// OptionsFromEnv reads <prefix>TYPE, <prefix>LOG and <prefix>LEVEL from the
// environment; an empty prefix means DefaultEnvPrefix. Unset variables
// contribute no option.
func OptionsFromEnv(prefix string) ([]Option, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	settings := make(map[string]string, 3)
	for _, key := range []string{"type", "log", "level"} {
		if v, ok := os.LookupEnv(prefix + strings.ToUpper(key)); ok {
			settings[key] = v
		}
	}

	return OptionsFromMap(settings)
}
