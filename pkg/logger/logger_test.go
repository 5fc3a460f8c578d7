package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	verbose, err := New(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))

	quiet, err := New(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))
}

func TestNamedWithNil(t *testing.T) {
	l := Named(nil, "Render")
	require.NotNil(t, l)
	l.Info("discarded")
}

func TestNamedTag(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Named(zap.New(core), "Render")

	l.Debug("rendered", zap.Int("segments", 4))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Render", entries[0].LoggerName)
	assert.Equal(t, int64(4), entries[0].ContextMap()["segments"])
}
