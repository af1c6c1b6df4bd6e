package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeverity_Label(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{ErrorSeverity, "error"},
		{WarningSeverity, "warn"},
		{InfoSeverity, "info"},
		{DebugSeverity, "debug"},
		{0, "info"},
		{9, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.severity.Label())
		})
	}
}

func TestSeverity_Enables(t *testing.T) {
	all := []Severity{ErrorSeverity, WarningSeverity, InfoSeverity, DebugSeverity}

	for _, threshold := range all {
		for _, msg := range all {
			require.Equal(t, uint8(msg) <= uint8(threshold), threshold.Enables(msg),
				"threshold=%s msg=%s", threshold, msg)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	t.Run("Names", func(t *testing.T) {
		for text, want := range map[string]Severity{
			"error":   ErrorSeverity,
			"WARN":    WarningSeverity,
			"warning": WarningSeverity,
			" Info ":  InfoSeverity,
			"debug":   DebugSeverity,
			"1":       ErrorSeverity,
			"4":       DebugSeverity,
		} {
			got, err := ParseSeverity(text)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseSeverity("loud")
		require.ErrorIs(t, err, ErrInvalidSeverity)
	})
}

func TestParseSink(t *testing.T) {
	for text, want := range map[string]Sink{
		"inline":  InlineSink,
		"0":       InlineSink,
		"FILE":    FileSink,
		"3":       FileSink,
		"console": ConsoleSink,
		"5":       ConsoleSink,
	} {
		got, err := ParseSink(text)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseSink("syslog")
	require.ErrorIs(t, err, ErrInvalidSink)
}

func TestSink_IsFile(t *testing.T) {
	require.True(t, FileSink.IsFile())
	require.True(t, InlineSink.IsFile())
	require.False(t, ConsoleSink.IsFile())
	require.False(t, Sink(7).Valid())
}
