package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/lawchase-server/internal/config"
)

func TestRoomOptions(t *testing.T) {
	t.Setenv("FRAME_RATE", "1000")
	t.Setenv("PLAYFIELD_WIDTH", "1024")

	cfg, err := config.Load()
	require.NoError(t, err)

	opts := roomOptions(cfg)
	assert.Equal(t, time.Millisecond, opts.FrameInterval)
	assert.Equal(t, time.Second, opts.CountdownInterval)
	assert.Equal(t, 1024.0, opts.Field.Width)
	assert.Equal(t, 130.0, opts.Field.Top)
}
