package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warning ", LevelWarn, false},
		{"Error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestQuantLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("catalog").
		With("path", "units.yml").
		Warn(context.Background(), errors.New("bad factor"), "skipping unit", "unit", "furlong")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "skipping unit", entry["msg"])
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, "bad factor", entry["error"])
	assert.Equal(t, "units.yml", entry["path"])
	assert.Equal(t, "furlong", entry["unit"])
}

func TestQuantLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, nil, "shown warning")
	logger.Error(ctx, nil, "shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warning")
	assert.Contains(t, out, "shown error")
}

func TestQuantLogger_DropsMalformedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})

	logger.Info(context.Background(), "odd fields", 1, "ignored", "dangling")

	line := buf.String()
	assert.Contains(t, line, "odd fields")
	assert.NotContains(t, line, "dangling")
	assert.NotContains(t, line, "ignored")
}

func TestQuantLogger_WithDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})

	_ = base.With("request", "child")
	base.Info(context.Background(), "parent")

	assert.NotContains(t, buf.String(), "child")
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), errors.New("x"), "discarded")
	})
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	op := logger.StartOperation("load_catalog")
	op.End(context.Background(), "units", 3)

	out := buf.String()
	assert.Contains(t, out, "operation completed")
	assert.Contains(t, out, "operation=load_catalog")
	assert.Contains(t, out, "units=3")
	assert.True(t, strings.Contains(out, "duration="))

	buf.Reset()
	op.EndWithError(context.Background(), errors.New("boom"))
	assert.Contains(t, buf.String(), "error=boom")
}
