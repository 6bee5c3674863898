package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"error":   LevelError,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"Info":    LevelInfo,
		"debug":   LevelDebug,
	}

	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", LevelWarn)

	l.Debug("hidden %d", 1)
	l.Info("hidden too")
	l.Warn("visible %s", "warning")
	l.Error("visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] visible warning")
	assert.Contains(t, out, "[ERROR] visible error")
}

func TestLevelEnabled(t *testing.T) {
	l := New(&bytes.Buffer{}, "test", LevelInfo)

	assert.True(t, l.LevelEnabled(LevelError))
	assert.True(t, l.LevelEnabled(LevelInfo))
	assert.False(t, l.LevelEnabled(LevelDebug))

	l.SetLevel(LevelDebug)
	assert.True(t, l.LevelEnabled(LevelDebug))

	var nilLogger *Logger
	assert.False(t, nilLogger.LevelEnabled(LevelError))
}
