package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"unknown": zapcore.InfoLevel,
	}

	for level, expected := range cases {
		t.Run(level, func(t *testing.T) {
			l, err := New(level, "json")
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(expected))
			if expected > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(expected-1))
			}
		})
	}
}

func TestZapWrapper_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapAdapter(zap.New(core))

	l.WithFields(map[string]interface{}{"request_id": "abc"}).
		WithError(errors.New("boom")).
		Error("request failed", map[string]interface{}{"status": 500})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request failed", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "abc", ctx["request_id"])
	assert.Equal(t, "boom", ctx["error"])
	assert.EqualValues(t, 500, ctx["status"])
}

func TestNewNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	assert.NotPanics(t, func() {
		l.Info("ignored", nil)
		_ = l.Sync()
	})
}
