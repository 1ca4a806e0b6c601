package session

import "github.com/ugaemi/lawchase-server/internal/game"

type EventType string

const (
	EventStarted        EventType = "started"
	EventCollision      EventType = "collision"
	EventRecoveryPrompt EventType = "recovery_prompt"
	EventEnding         EventType = "ending"
	EventTerminal       EventType = "terminal"
	EventMenu           EventType = "menu"
)

// Event is a discrete phase-transition notification for the presentation side.
type Event struct {
	Type      EventType    `json:"type"`
	SessionID string       `json:"session_id"`
	Variant   game.Variant `json:"variant"`
	Phase     game.Phase   `json:"phase"`
	Outcome   game.Outcome `json:"outcome,omitempty"`
	Score     float64      `json:"score"`
}

// FinalScore is the score as shown on the ending banner.
func (e Event) FinalScore() int {
	return roundScore(e.Score)
}

type PlayerView struct {
	Position game.Vector2 `json:"position"`
	Scale    float64      `json:"scale"`
	Alive    bool         `json:"alive"`
}

type PursuerView struct {
	Position game.Vector2 `json:"position"`
	Scale    float64      `json:"scale"`
	Active   bool         `json:"active"`
}

// Snapshot is the read-only per-frame view of a session.
type Snapshot struct {
	SessionID     string       `json:"session_id"`
	Variant       game.Variant `json:"variant"`
	Frame         uint64       `json:"frame"`
	Player        PlayerView   `json:"player"`
	Pursuer       PursuerView  `json:"pursuer"`
	TimeRemaining int          `json:"time_remaining"`
	Score         float64      `json:"score"`
	Phase         game.Phase   `json:"phase"`
	Warning       bool         `json:"warning,omitempty"`
}

// Sink receives everything a session emits. Calls happen on the goroutine
// driving the session.
type Sink interface {
	Snapshot(Snapshot)
	Event(Event)
}

// NopSink discards all output.
type NopSink struct{}

func (NopSink) Snapshot(Snapshot) {}
func (NopSink) Event(Event)       {}

func roundScore(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
