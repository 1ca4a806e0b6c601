package room

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// mockClient creates a ws.Client with a buffered Send channel for testing.
func mockClient(id string) *ws.Client {
	return &ws.Client{
		ID:   id,
		Send: make(chan []byte, 4096),
	}
}

// drainMessages reads all pending messages from a client's send channel.
func drainMessages(client *ws.Client) []ws.Message {
	var msgs []ws.Message
	for {
		select {
		case data, ok := <-client.Send:
			if !ok {
				return msgs
			}
			var msg ws.Message
			if err := json.Unmarshal(data, &msg); err == nil {
				msgs = append(msgs, msg)
			}
		default:
			return msgs
		}
	}
}

// findMessageByType finds the first message of a given type.
func findMessageByType(msgs []ws.Message, msgType string) *ws.Message {
	for _, m := range msgs {
		if m.Type == msgType {
			return &m
		}
	}
	return nil
}

func countMessages(msgs []ws.Message, msgType string) int {
	n := 0
	for _, m := range msgs {
		if m.Type == msgType {
			n++
		}
	}
	return n
}

// waitForMessage collects messages until one of msgType shows up.
func waitForMessage(t *testing.T, client *ws.Client, msgType string, timeout time.Duration) (*ws.Message, []ws.Message) {
	t.Helper()
	var all []ws.Message
	deadline := time.After(timeout)
	for {
		select {
		case data := <-client.Send:
			var msg ws.Message
			require.NoError(t, json.Unmarshal(data, &msg))
			all = append(all, msg)
			if msg.Type == msgType {
				return &msg, all
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %s", msgType)
			return nil, all
		}
	}
}

type endingPayload struct {
	SessionID  string  `json:"session_id"`
	Outcome    string  `json:"outcome"`
	Score      float64 `json:"score"`
	FinalScore int     `json:"final_score"`
}

func setupTestRoom() (*Room, *ws.Client) {
	c := mockClient("client1")
	return NewRoom("TEST", c, DefaultOptions()), c
}

func TestStartSession_SendsSessionStart(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantFAR)

	msgs := drainMessages(c)
	start := findMessageByType(msgs, ws.TypeSessionStart)
	require.NotNil(t, start)

	var data struct {
		SessionID     string         `json:"session_id"`
		Variant       string         `json:"variant"`
		Title         string         `json:"title"`
		Playfield     game.Playfield `json:"playfield"`
		TimeRemaining int            `json:"time_remaining"`
		Joystick      struct {
			BaseRadius float64 `json:"base_radius"`
		} `json:"joystick"`
	}
	require.NoError(t, start.Decode(&data))
	assert.Equal(t, r.session.ID(), data.SessionID)
	assert.Equal(t, "far", data.Variant)
	assert.Equal(t, "F.A.R. LIMIT", data.Title)
	assert.Equal(t, game.DefaultPlayfield(), data.Playfield)
	assert.Equal(t, game.RoundSeconds, data.TimeRemaining)
	assert.Equal(t, game.JoystickBaseRadius, data.Joystick.BaseRadius)
}

func TestStartSession_UnknownVariant(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.Variant(0))

	msgs := drainMessages(c)
	require.NotNil(t, findMessageByType(msgs, ws.TypeError))
	assert.Nil(t, findMessageByType(msgs, ws.TypeSessionStart))
}

func TestFrame_SendsSnapshot(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantArticle78)
	drainMessages(c)

	r.session.Frame()

	msgs := drainMessages(c)
	frame := findMessageByType(msgs, ws.TypeFrame)
	require.NotNil(t, frame)

	var snap struct {
		Frame         uint64 `json:"frame"`
		Phase         string `json:"phase"`
		TimeRemaining int    `json:"time_remaining"`
	}
	require.NoError(t, frame.Decode(&snap))
	assert.Equal(t, uint64(1), snap.Frame)
	assert.Equal(t, "playing", snap.Phase)
	assert.Equal(t, game.RoundSeconds, snap.TimeRemaining)
}

func TestTimeout_EndingThenConfirmReturnsToMenu(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantArticle78)
	drainMessages(c)

	for i := 0; i < game.RoundSeconds+3; i++ {
		r.session.Countdown()
	}

	msgs := drainMessages(c)
	assert.Equal(t, 1, countMessages(msgs, ws.TypeEnding))
	ending := findMessageByType(msgs, ws.TypeEnding)
	require.NotNil(t, ending)

	var data endingPayload
	require.NoError(t, ending.Decode(&data))
	assert.Equal(t, "won", data.Outcome)
	assert.Equal(t, 100, data.FinalScore)

	r.Confirm()
	(<-r.cmds)(r)

	msgs = drainMessages(c)
	require.NotNil(t, findMessageByType(msgs, ws.TypeTerminal))
	require.NotNil(t, findMessageByType(msgs, ws.TypeMenu))
	assert.False(t, r.session.Active())
}

func TestConfirm_WhilePlayingIsRejected(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantFAR)
	drainMessages(c)

	r.Confirm()
	(<-r.cmds)(r)

	msgs := drainMessages(c)
	require.NotNil(t, findMessageByType(msgs, ws.TypeError))
	assert.Equal(t, game.PhasePlaying, r.session.Phase())
}

func TestActivateRecovery_Unavailable(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantMemberDeference)
	drainMessages(c)

	r.ActivateRecovery()
	(<-r.cmds)(r)

	errMsg := findMessageByType(drainMessages(c), ws.TypeError)
	require.NotNil(t, errMsg)
	var payload ws.ErrorMessage
	require.NoError(t, errMsg.Decode(&payload))
	assert.Equal(t, "recovery is not available", payload.Message)
}

func TestReturnToMenu(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantFAR)
	drainMessages(c)

	r.ReturnToMenu()
	(<-r.cmds)(r)

	menu := findMessageByType(drainMessages(c), ws.TypeMenu)
	require.NotNil(t, menu)
	var data menuMessage
	require.NoError(t, json.Unmarshal(menu.Data, &data))
	require.Len(t, data.Variants, 3)
	assert.Equal(t, game.VariantArticle78, data.Variants[0].Variant)
	assert.Equal(t, "ARTICLE 78", data.Variants[0].Label)
	assert.Equal(t, game.VariantMemberDeference, data.Variants[2].Variant)

	// no frames after the menu
	r.session.Frame()
	assert.Empty(t, drainMessages(c))
}

func TestInputCommands(t *testing.T) {
	r, c := setupTestRoom()
	r.startSession(game.VariantArticle78)
	drainMessages(c)

	r.SetKeys(game.KeyState{Right: true})
	(<-r.cmds)(r)
	assert.Equal(t, game.Vec(1, 0), r.session.Direction())

	anchor := r.opts.Field.JoystickAnchor()
	r.PointerDown(anchor)
	(<-r.cmds)(r)
	r.PointerMove(anchor.Add(game.Vec(0, -30)))
	(<-r.cmds)(r)
	assert.InDelta(t, -1.0, r.session.Direction().Y, 1e-9, "stick overrides keys")

	r.PointerUp()
	(<-r.cmds)(r)
	assert.Equal(t, game.Vec(1, 0), r.session.Direction())
}

func TestMenuEntries(t *testing.T) {
	entries := MenuEntries()
	require.Len(t, entries, len(game.Variants))
	for i, e := range entries {
		assert.Equal(t, game.Variants[i], e.Variant)
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Subtitle)
	}
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(nil)
	assert.Len(t, code, codeLength)
	assert.NotContains(t, code, "I")
	assert.NotContains(t, code, "O")

	existing := map[string]bool{}
	for i := 0; i < 200; i++ {
		c := GenerateCode(existing)
		assert.False(t, existing[c], "duplicate code %s", c)
		existing[c] = true
	}
}
