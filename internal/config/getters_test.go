package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvStr(t *testing.T) {
	t.Setenv("LOG_SURGEON_TEST_STR", "value")

	assert.Equal(t, "value", GetEnvStr("LOG_SURGEON_TEST_STR", "default"))
	assert.Equal(t, "default", GetEnvStr("LOG_SURGEON_TEST_STR_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("LOG_SURGEON_TEST_INT", "42")
	t.Setenv("LOG_SURGEON_TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, GetEnvInt("LOG_SURGEON_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("LOG_SURGEON_TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvInt("LOG_SURGEON_TEST_INT_UNSET", 7))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"YES", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"garbage", true}, // falls back to default
	}

	for _, tt := range tests {
		t.Setenv("LOG_SURGEON_TEST_BOOL", tt.value)
		assert.Equal(t, tt.want, GetEnvBool("LOG_SURGEON_TEST_BOOL", true), "value %q", tt.value)
	}
}

func TestGetEnvLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Setenv("LOG_SURGEON_TEST_LEVEL", tt.value)
		assert.Equal(t, tt.want, GetEnvLogLevel("LOG_SURGEON_TEST_LEVEL", slog.LevelInfo), "value %q", tt.value)
	}
}
