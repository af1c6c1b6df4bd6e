package zaphandler

import (
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/ristretto-go/rslog/core"
)

// Logger is the part of *logger.Logger the adapter needs.
type Logger interface {
	Enabled(sev core.Severity) bool
	Log(sev core.Severity, args ...interface{}) error
}

// Core is a zapcore.Core that writes zap entries through a Logger, so
// libraries that log with zap share the application's log file and
// format. Fields are appended to the message as " key=value", sorted by
// key.
type Core struct {
	logger Logger
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a zapcore.Core writing to l.
func NewCore(l Logger) *Core {
	return &Core{logger: l}
}

// Enabled reports whether entries at lvl pass the logger's threshold.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToSeverity(lvl))
}

// With returns a Core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{logger: c.logger, fields: merged}
}

// Check adds the core to ce if the entry is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and passes it to the logger.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var b strings.Builder
	b.WriteString(ent.Message)
	if ent.LoggerName != "" {
		enc.Fields["logger"] = ent.LoggerName
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		text, err := core.Stringify(core.Any(enc.Fields[k]))
		if err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(text)
	}

	return c.logger.Log(zapLevelToSeverity(ent.Level), b.String())
}

// Sync is a no-op: the logger's sinks do not buffer.
func (c *Core) Sync() error {
	return nil
}

// zapLevelToSeverity converts a zap level to a core.Severity. Every level
// at or above error, including panic and fatal, maps to ErrorSeverity.
func zapLevelToSeverity(lvl zapcore.Level) core.Severity {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorSeverity
	case lvl == zapcore.WarnLevel:
		return core.WarningSeverity
	case lvl == zapcore.InfoLevel:
		return core.InfoSeverity
	default:
		return core.DebugSeverity
	}
}
