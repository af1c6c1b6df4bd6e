package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/handler"
	"github.com/ristretto-go/rslog/handler/consolehandler"
	"github.com/ristretto-go/rslog/handler/filehandler"
	"github.com/ristretto-go/rslog/pathutil"
)

// DefaultMinSeverity is the threshold of a Logger built without
// WithMinSeverity.
const DefaultMinSeverity = core.InfoSeverity

// Logger writes severity-filtered lines to a log file or the console.
// It is safe for concurrent use; configuration may change while other
// goroutines are logging.
type Logger struct {
	mu          sync.RWMutex
	sink        core.Sink
	minSeverity core.Severity
	console     *consolehandler.ConsoleHandler
	file        *filehandler.FileHandler
	extra       handler.Handler
	errOut      zapcore.WriteSyncer
	now         func() time.Time
	discover    func() (string, error)
}

// New creates a Logger writing to the console at InfoSeverity, with no
// log file set.
func New(opts ...Option) *Logger {
	l := &Logger{
		sink:        core.ConsoleSink,
		minSeverity: DefaultMinSeverity,
		console:     consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}),
		file:        filehandler.NewFileHandler(filehandler.FileConfig{}),
		errOut:      zapcore.Lock(os.Stderr),
		now:         time.Now,
		discover:    pathutil.DefaultLogPath,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Configure applies opts and then, when no log path is set, falls back to
// the discovered default path. If that path cannot be determined or is not
// writable, an error line is written to the console and the path stays
// unset.
func (l *Logger) Configure(opts ...Option) *Logger {
	l.mu.Lock()
	for _, opt := range opts {
		opt(l)
	}
	hasPath := l.file.Filename() != ""
	discover := l.discover
	l.mu.Unlock()

	if hasPath {
		return l
	}

	path, err := discover()
	switch {
	case err != nil:
		l.warnConsole(fmt.Sprintf("default log file could not be determined: %v", err))
	case !pathutil.IsWritable(path):
		l.warnConsole(fmt.Sprintf("default log file '%s' not writable", path))
	default:
		l.mu.Lock()
		if l.file.Filename() == "" {
			l.file.SetFilename(path)
		}
		l.mu.Unlock()
	}

	return l
}

// warnConsole writes an error line to the console regardless of the
// configured sink and threshold.
func (l *Logger) warnConsole(text string) {
	l.mu.RLock()
	console, now := l.console, l.now
	l.mu.RUnlock()

	entry := core.GetEntry()
	entry.Time = now()
	entry.Severity = core.ErrorSeverity
	entry.Text = text
	_ = console.Handle(entry)
	core.PutEntry(entry)
}

// SetLog sets the log file path; a leading "~" is expanded. An empty path
// disables file output.
func (l *Logger) SetLog(path string) {
	l.mu.Lock()
	l.file.SetFilename(pathutil.Expand(path))
	l.mu.Unlock()
}

// SetSink selects where lines are written.
func (l *Logger) SetSink(sink core.Sink) {
	l.mu.Lock()
	l.sink = sink
	l.mu.Unlock()
}

// SetMinSeverity sets the threshold.
func (l *Logger) SetMinSeverity(sev core.Severity) {
	l.mu.Lock()
	l.minSeverity = sev
	l.mu.Unlock()
}

// Target returns the log file path, or "" when none is set.
func (l *Logger) Target() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.file.Filename()
}

// Sink returns the configured sink.
func (l *Logger) Sink() core.Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sink
}

// MinSeverity returns the threshold.
func (l *Logger) MinSeverity() core.Severity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minSeverity
}

// Enabled reports whether a message of severity sev would be written.
func (l *Logger) Enabled(sev core.Severity) bool {
	return l.MinSeverity().Enables(sev)
}

// Log writes the arguments, rendered and concatenated without separators,
// as one line of severity sev. Messages less urgent than the threshold are
// dropped. An argument that cannot be rendered is reported as an error
// wrapping core.ErrUnsupportedKind and nothing is written; failures of the
// sink itself are not returned but counted in Stats.
func (l *Logger) Log(sev core.Severity, args ...interface{}) error {
	l.mu.RLock()
	minSeverity, sink := l.minSeverity, l.sink
	console, file, extra, now := l.console, l.file, l.extra, l.now
	l.mu.RUnlock()

	if !minSeverity.Enables(sev) {
		return nil
	}

	text, err := render(args)
	if err != nil {
		return err
	}

	var target handler.Handler = file
	if sink == core.ConsoleSink {
		target = console
	}

	entry := core.GetEntry()
	entry.Time = now()
	entry.Severity = sev
	entry.Text = text

	_ = target.Handle(entry)
	if extra != nil {
		_ = extra.Handle(entry)
	}

	core.PutEntry(entry)
	return nil
}

func render(args []interface{}) (string, error) {
	if len(args) == 1 {
		return core.Stringify(core.Any(args[0]))
	}

	var b strings.Builder
	for i, arg := range args {
		s, err := core.Stringify(core.Any(arg))
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", i, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// emit logs and reports render failures to the error output.
func (l *Logger) emit(sev core.Severity, args []interface{}) {
	if err := l.Log(sev, args...); err != nil {
		l.report(err)
	}
}

func (l *Logger) report(err error) {
	l.mu.RLock()
	out, now := l.errOut, l.now
	l.mu.RUnlock()

	buf := core.AppendTimestamp(make([]byte, 0, 128), now())
	buf = append(buf, " [error]: rslog: "...)
	buf = append(buf, err.Error()...)
	buf = append(buf, '\n')
	_, _ = out.Write(buf)
}

// Error logs the arguments at ErrorSeverity.
func (l *Logger) Error(args ...interface{}) {
	l.emit(core.ErrorSeverity, args)
}

// Warning logs the arguments at WarningSeverity.
func (l *Logger) Warning(args ...interface{}) {
	l.emit(core.WarningSeverity, args)
}

// Info logs the arguments at InfoSeverity.
func (l *Logger) Info(args ...interface{}) {
	l.emit(core.InfoSeverity, args)
}

// Debug logs the arguments at DebugSeverity.
func (l *Logger) Debug(args ...interface{}) {
	l.emit(core.DebugSeverity, args)
}

// Errorf logs a formatted message at ErrorSeverity.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorSeverity, format, args)
}

// Warningf logs a formatted message at WarningSeverity.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(core.WarningSeverity, format, args)
}

// Infof logs a formatted message at InfoSeverity.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoSeverity, format, args)
}

// Debugf logs a formatted message at DebugSeverity.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugSeverity, format, args)
}

func (l *Logger) logf(sev core.Severity, format string, args []interface{}) {
	// Avoid formatting messages that would be dropped.
	if !l.Enabled(sev) {
		return
	}
	l.emit(sev, []interface{}{fmt.Sprintf(format, args...)})
}

// Stats returns the combined counters of the logger's handlers.
func (l *Logger) Stats() handler.Snapshot {
	l.mu.RLock()
	console, file, extra := l.console, l.file, l.extra
	l.mu.RUnlock()

	s := console.Stats().Add(file.Stats())
	if sp, ok := extra.(handler.StatsProvider); ok {
		s = s.Add(sp.Stats())
	}
	return s
}

// Close closes the logger's handlers. Later messages are dropped.
func (l *Logger) Close() error {
	l.mu.RLock()
	console, file, extra := l.console, l.file, l.extra
	l.mu.RUnlock()

	err := multierr.Combine(console.Close(), file.Close())
	if extra != nil {
		err = multierr.Append(err, extra.Close())
	}
	return err
}
