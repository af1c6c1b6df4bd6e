package sloghandler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ristretto-go/rslog/core"
)

// Logger is the part of *logger.Logger the adapter needs.
type Logger interface {
	Enabled(sev core.Severity) bool
	Log(sev core.Severity, args ...interface{}) error
}

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Records become single log lines: the message followed by
// " key=value" for every attribute.
type SlogHandler struct {
	logger Logger
	attrs  string
	group  string
}

// New creates a new slog.Handler adapter writing to l.
func New(l Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToSeverity(level))
}

// Handle renders the record and passes it to the logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)

	var err error
	record.Attrs(func(a slog.Attr) bool {
		err = appendAttr(&b, s.group, a)
		return err == nil
	})
	if err != nil {
		return err
	}

	return s.logger.Log(slogLevelToSeverity(record.Level), b.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		// Unsupported values are rendered by kind name; Handle reports them.
		if err := appendAttr(&b, s.group, a); err != nil {
			b.WriteString(" " + qualify(s.group, a.Key) + "=(unsupported)")
		}
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  b.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  qualify(s.group, name),
	}
}

// slogLevelToSeverity converts a slog.Level to a core.Severity.
func slogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError:
		return core.ErrorSeverity
	case level >= slog.LevelWarn:
		return core.WarningSeverity
	case level >= slog.LevelInfo:
		return core.InfoSeverity
	default:
		return core.DebugSeverity
	}
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) error {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = qualify(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			if err := appendAttr(b, prefix, ga); err != nil {
				return err
			}
		}
		return nil
	}

	var v core.Value
	switch a.Value.Kind() {
	case slog.KindString:
		v = core.String(a.Value.String())
	case slog.KindInt64:
		v = core.Int64(a.Value.Int64())
	case slog.KindUint64:
		v = core.Uint64(a.Value.Uint64())
	case slog.KindFloat64:
		v = core.Float64(a.Value.Float64())
	case slog.KindBool:
		v = core.Bool(a.Value.Bool())
	default:
		v = core.Any(a.Value.Any())
	}

	text, err := core.Stringify(v)
	if err != nil {
		return err
	}

	b.WriteByte(' ')
	b.WriteString(qualify(group, a.Key))
	b.WriteByte('=')
	b.WriteString(text)
	return nil
}
