package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_AdvanceFrameIsFixed(t *testing.T) {
	c := NewClock()
	for i := 0; i < 120; i++ {
		assert.Equal(t, FrameStep, c.AdvanceFrame())
	}
	assert.Equal(t, uint64(120), c.Frames)
	assert.InDelta(t, 2.0, float64(c.Frames)*FrameStep, 1e-9)
	assert.Equal(t, RoundSeconds, c.TimeRemaining, "frames never touch the countdown")
}

func TestClock_CountdownExpiresOnce(t *testing.T) {
	c := NewClock()
	expiries := 0
	for i := 0; i < RoundSeconds+5; i++ {
		remaining, expired := c.Countdown()
		assert.GreaterOrEqual(t, remaining, 0)
		if expired {
			expiries++
			assert.Equal(t, RoundSeconds-1, i)
		}
	}
	assert.Equal(t, 1, expiries)
	assert.Equal(t, 0, c.TimeRemaining)
	assert.Zero(t, c.Frames, "countdown never touches the frame accumulator")
}

func TestClock_Reset(t *testing.T) {
	c := NewClock()
	c.AdvanceFrame()
	c.Countdown()
	c.Reset()
	assert.Equal(t, Clock{TimeRemaining: RoundSeconds}, *c)
}
