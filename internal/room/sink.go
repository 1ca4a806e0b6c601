package room

import (
	"log/slog"

	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/session"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// MenuEntry describes one selectable variant.
type MenuEntry struct {
	Variant  game.Variant `json:"variant"`
	Title    string       `json:"title"`
	Label    string       `json:"label"`
	Subtitle string       `json:"subtitle"`
}

type menuMessage struct {
	Variants []MenuEntry `json:"variants"`
}

type joystickInfo struct {
	Anchor      game.Vector2 `json:"anchor"`
	BaseRadius  float64      `json:"base_radius"`
	ThumbRadius float64      `json:"thumb_radius"`
}

type sessionStartMessage struct {
	SessionID     string         `json:"session_id"`
	Variant       game.Variant   `json:"variant"`
	Title         string         `json:"title"`
	Label         string         `json:"label"`
	Subtitle      string         `json:"subtitle"`
	Playfield     game.Playfield `json:"playfield"`
	Joystick      joystickInfo   `json:"joystick"`
	TimeRemaining int            `json:"time_remaining"`
}

type collisionMessage struct {
	SessionID string  `json:"session_id"`
	Score     float64 `json:"score"`
}

type recoveryPromptMessage struct {
	SessionID string `json:"session_id"`
}

type endingMessage struct {
	SessionID  string       `json:"session_id"`
	Outcome    game.Outcome `json:"outcome"`
	Score      float64      `json:"score"`
	FinalScore int          `json:"final_score"`
}

type terminalMessage struct {
	SessionID string `json:"session_id"`
}

// MenuEntries lists the selectable variants in menu order.
func MenuEntries() []MenuEntry {
	entries := make([]MenuEntry, 0, len(game.Variants))
	for _, v := range game.Variants {
		p, err := game.NewPolicy(v)
		if err != nil {
			continue
		}
		entries = append(entries, MenuEntry{
			Variant:  v,
			Title:    p.Title(),
			Label:    p.Label(),
			Subtitle: p.Subtitle(),
		})
	}
	return entries
}

func (r *Room) sendMenu() {
	r.send(ws.TypeMenu, menuMessage{Variants: MenuEntries()})
}

// Snapshot implements session.Sink.
func (r *Room) Snapshot(snap session.Snapshot) {
	r.send(ws.TypeFrame, snap)
}

// Event implements session.Sink.
func (r *Room) Event(ev session.Event) {
	switch ev.Type {
	case session.EventStarted:
		p := r.session.Policy()
		field := r.session.Field()
		stick := game.NewJoystick(field.JoystickAnchor())
		r.send(ws.TypeSessionStart, sessionStartMessage{
			SessionID: ev.SessionID,
			Variant:   ev.Variant,
			Title:     p.Title(),
			Label:     p.Label(),
			Subtitle:  p.Subtitle(),
			Playfield: field,
			Joystick: joystickInfo{
				Anchor:      stick.Anchor,
				BaseRadius:  stick.BaseRadius,
				ThumbRadius: stick.ThumbRadius,
			},
			TimeRemaining: r.session.TimeRemaining(),
		})
		slog.Info("session started", "room", r.Code, "session", ev.SessionID, "variant", ev.Variant.String())

	case session.EventCollision:
		r.send(ws.TypeCollision, collisionMessage{SessionID: ev.SessionID, Score: ev.Score})
		slog.Debug("collision", "room", r.Code, "session", ev.SessionID, "score", ev.Score)

	case session.EventRecoveryPrompt:
		r.send(ws.TypeRecoveryPrompt, recoveryPromptMessage{SessionID: ev.SessionID})
		slog.Info("recovery offered", "room", r.Code, "session", ev.SessionID)

	case session.EventEnding:
		r.send(ws.TypeEnding, endingMessage{
			SessionID:  ev.SessionID,
			Outcome:    ev.Outcome,
			Score:      ev.Score,
			FinalScore: ev.FinalScore(),
		})
		slog.Info("session ended", "room", r.Code, "session", ev.SessionID,
			"variant", ev.Variant.String(), "outcome", ev.Outcome.String(), "score", ev.FinalScore())

	case session.EventTerminal:
		r.send(ws.TypeTerminal, terminalMessage{SessionID: ev.SessionID})

	case session.EventMenu:
		r.sendMenu()
	}
}

func (r *Room) send(msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to build message", "room", r.Code, "type", msgType, "error", err)
		return
	}
	r.client.SendMessage(msg)
}
