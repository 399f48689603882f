package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	for _, tag := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]", "test:"} {
		assert.Contains(t, output, tag)
	}
}

func TestLoggerFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")

	output := buf.String()
	assert.NotContains(t, output, "[DEBUG]")
	assert.NotContains(t, output, "[INFO]")
	assert.Contains(t, output, "[WARN]")

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
	assert.Equal(t, LevelDebug, logger.Level())
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	logger.Info("formatted %s %d", "test", 42)

	assert.Contains(t, buf.String(), "formatted test 42")
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"b": 2, "a": "x"}).WithComponent("nav").Info("query")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "{a=x, b=2, component=nav}"), line)
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Output: &buf})

	_ = logger.WithField("k", "v")
	logger.Info("plain")

	assert.NotContains(t, buf.String(), "k=v")
}

func TestNopAndDisable(t *testing.T) {
	Nop().Error("dropped")

	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Output: &buf})
	logger.Disable()
	logger.Error("dropped")
	assert.Empty(t, buf.String())
}
