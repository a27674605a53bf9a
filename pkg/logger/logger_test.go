package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestInitReplacesLogger(t *testing.T) {
	before := Log
	Init("debug")
	assert.NotSame(t, before, Log)
	assert.True(t, Log.Enabled(context.Background(), slog.LevelDebug))
	t.Cleanup(func() { Log = before })
}
