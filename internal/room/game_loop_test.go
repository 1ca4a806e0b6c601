package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

func fastOptions() Options {
	return Options{
		Field:             game.DefaultPlayfield(),
		FrameInterval:     2 * time.Millisecond,
		CountdownInterval: time.Millisecond,
	}
}

func TestGameLoop_BroadcastsFrames(t *testing.T) {
	c := mockClient("client1")
	r := NewRoom("TEST", c, fastOptions())
	r.StartLoop()
	defer r.Stop()

	r.SelectVariant(game.VariantFAR)

	_, msgs := waitForMessage(t, c, ws.TypeFrame, time.Second)
	require.NotNil(t, findMessageByType(msgs, ws.TypeSessionStart))
}

func TestGameLoop_TimerExpiry(t *testing.T) {
	c := mockClient("client1")
	r := NewRoom("TEST", c, fastOptions())
	r.StartLoop()
	defer r.Stop()

	// Article 78 spawns the pursuer far enough away to survive a fast round.
	r.SelectVariant(game.VariantArticle78)

	ending, _ := waitForMessage(t, c, ws.TypeEnding, 2*time.Second)
	var data endingPayload
	require.NoError(t, ending.Decode(&data))
	assert.Equal(t, "won", data.Outcome)

	// no second ending
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, countMessages(drainMessages(c), ws.TypeEnding))
}

func TestGameLoop_ReplayStartsFresh(t *testing.T) {
	c := mockClient("client1")
	r := NewRoom("TEST", c, fastOptions())
	r.StartLoop()
	defer r.Stop()

	r.SelectVariant(game.VariantArticle78)
	first, _ := waitForMessage(t, c, ws.TypeSessionStart, time.Second)
	var a struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, first.Decode(&a))

	r.ReturnToMenu()
	r.SelectVariant(game.VariantArticle78)
	second, _ := waitForMessage(t, c, ws.TypeSessionStart, time.Second)
	var b struct {
		SessionID     string `json:"session_id"`
		TimeRemaining int    `json:"time_remaining"`
	}
	require.NoError(t, second.Decode(&b))

	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Equal(t, game.RoundSeconds, b.TimeRemaining)
}

func TestStop_DoubleStopSafe(t *testing.T) {
	c := mockClient("client1")
	r := NewRoom("TEST", c, fastOptions())
	r.StartLoop()
	r.SelectVariant(game.VariantFAR)

	r.Stop()
	r.Stop()

	// commands after stop neither block nor reach the session
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			r.SetKeys(game.KeyState{Up: true})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked after stop")
	}
	assert.False(t, r.session.Active())
}

func TestStop_WithoutLoop(t *testing.T) {
	r := NewRoom("TEST", mockClient("client1"), fastOptions())
	assert.NotPanics(t, r.Stop)
}
