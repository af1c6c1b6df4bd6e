package sloghandler_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ristretto-go/rslog/core"
	"github.com/ristretto-go/rslog/handler/sloghandler"
	"github.com/ristretto-go/rslog/logger"
)

type line struct {
	sev  core.Severity
	text string
}

type fakeLogger struct {
	threshold core.Severity
	lines     []line
}

func (f *fakeLogger) Enabled(sev core.Severity) bool { return f.threshold.Enables(sev) }

func (f *fakeLogger) Log(sev core.Severity, args ...interface{}) error {
	f.lines = append(f.lines, line{sev: sev, text: args[0].(string)})
	return nil
}

func TestSlogHandler_Handle(t *testing.T) {
	fake := &fakeLogger{threshold: core.DebugSeverity}
	log := slog.New(sloghandler.New(fake))

	log.Info("started", "port", 8080, "tls", true, "ratio", 0.5)
	log.Warn("slow", slog.Duration("took", 2*time.Second))

	require.Equal(t, []line{
		{core.InfoSeverity, "started port=8080 tls=true ratio=0.5"},
		{core.WarningSeverity, "slow took=2s"},
	}, fake.lines)
}

func TestSlogHandler_Levels(t *testing.T) {
	fake := &fakeLogger{threshold: core.DebugSeverity}
	log := slog.New(sloghandler.New(fake))

	log.Error("e")
	log.Warn("w")
	log.Info("i")
	log.Debug("d")
	log.Log(context.Background(), slog.LevelDebug-4, "trace")
	log.Log(context.Background(), slog.LevelError+4, "fatal")

	var got []core.Severity
	for _, l := range fake.lines {
		got = append(got, l.sev)
	}
	require.Equal(t, []core.Severity{
		core.ErrorSeverity, core.WarningSeverity, core.InfoSeverity,
		core.DebugSeverity, core.DebugSeverity, core.ErrorSeverity,
	}, got)
}

func TestSlogHandler_Enabled(t *testing.T) {
	fake := &fakeLogger{threshold: core.WarningSeverity}
	h := sloghandler.New(fake)

	require.True(t, h.Enabled(context.Background(), slog.LevelError))
	require.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	require.False(t, h.Enabled(context.Background(), slog.LevelInfo))

	slog.New(h).Info("dropped")
	require.Empty(t, fake.lines)
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	fake := &fakeLogger{threshold: core.InfoSeverity}
	log := slog.New(sloghandler.New(fake)).
		With("svc", "api").
		WithGroup("req").
		With("id", 7)

	log.Info("done", "status", 200, slog.Group("user", "name", "bob"), slog.Attr{})

	require.Len(t, fake.lines, 1)
	require.Equal(t, "done svc=api req.id=7 req.status=200 req.user.name=bob", fake.lines[0].text)
}

func TestSlogHandler_EmptyGroup(t *testing.T) {
	fake := &fakeLogger{threshold: core.InfoSeverity}
	h := sloghandler.New(fake)
	require.Same(t, h, h.WithGroup(""))
}

func TestSlogHandler_UnsupportedAttr(t *testing.T) {
	fake := &fakeLogger{threshold: core.InfoSeverity}
	h := sloghandler.New(fake)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	r.AddAttrs(slog.Any("ch", make(chan int)))

	err := h.Handle(context.Background(), r)
	require.ErrorIs(t, err, core.ErrUnsupportedKind)
	require.Empty(t, fake.lines)

	// Attributes bound with WithAttrs cannot fail later; they render a marker.
	slog.New(h).With("fn", func() {}).Info("msg")
	require.Equal(t, "msg fn=(unsupported)", fake.lines[0].text)
}

func TestSlogHandler_Logger(t *testing.T) {
	var out bytes.Buffer
	l := logger.New(
		logger.WithConsoleWriter(&out),
		logger.WithClock(func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
		}),
	)

	slog.New(sloghandler.New(l)).Warn("low memory", "free_mb", 12)
	slog.New(sloghandler.New(l)).Debug("dropped")

	require.Equal(t, "2024-03-01 12:00:00.0000000000 [warn]: low memory free_mb=12\n", out.String())
}
