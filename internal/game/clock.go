package game

// Clock holds the two independent time sources of a round: the nominal frame
// accumulator and the one-second countdown. They are driven separately and
// never reconciled.
type Clock struct {
	Frames        uint64
	TimeRemaining int
}

func NewClock() *Clock {
	c := &Clock{}
	c.Reset()
	return c
}

func (c *Clock) Reset() {
	c.Frames = 0
	c.TimeRemaining = RoundSeconds
}

// AdvanceFrame records one rendered frame and returns the fixed step.
func (c *Clock) AdvanceFrame() float64 {
	c.Frames++
	return FrameStep
}

// Countdown takes one second off the round. expired is true only on the call
// that reaches zero.
func (c *Clock) Countdown() (remaining int, expired bool) {
	if c.TimeRemaining <= 0 {
		return 0, false
	}
	c.TimeRemaining--
	return c.TimeRemaining, c.TimeRemaining == 0
}
