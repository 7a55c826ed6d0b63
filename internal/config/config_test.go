package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 0.4, cfg.SpikeThreshold)
	assert.Equal(t, 0.2, cfg.SuddenChangeDelta)
	assert.Equal(t, "dominant", cfg.EmotionMode)
	assert.Equal(t, "tesla", cfg.StreamKeyword)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SPIKE_THRESHOLD", "0.55")
	t.Setenv("EMOTION_MODE", "distribution")
	t.Setenv("STREAM_KEYWORD", "ai")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 0.55, cfg.SpikeThreshold)
	assert.Equal(t, "distribution", cfg.EmotionMode)
	assert.Equal(t, "ai", cfg.StreamKeyword)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric threshold", "SPIKE_THRESHOLD", "lots"},
		{"threshold above one", "SPIKE_THRESHOLD", "1.5"},
		{"negative delta", "SUDDEN_CHANGE_DELTA", "-0.1"},
		{"unknown emotion mode", "EMOTION_MODE", "vibes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
