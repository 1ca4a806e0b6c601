package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 800.0, cfg.PlayfieldWidth)
	assert.Equal(t, 600.0, cfg.PlayfieldHeight)
	assert.Equal(t, 130.0, cfg.PlayfieldTop)
	assert.Equal(t, 60, cfg.FrameRate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PLAYFIELD_TOP", "200")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 200.0, cfg.PlayfieldTop)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"zero frame rate", "FRAME_RATE", "0"},
		{"frame rate above max", "FRAME_RATE", "2000000000"},
		{"top below floor", "PLAYFIELD_TOP", "590"},
		{"narrow playfield", "PLAYFIELD_WIDTH", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MaxFrameRate(t *testing.T) {
	t.Setenv("FRAME_RATE", "1000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MaxFrameRate, cfg.FrameRate)
}
