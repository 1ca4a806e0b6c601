package handler

import (
	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/room"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	rm *room.Manager
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(rm *room.Manager) *GameplayHandler {
	return &GameplayHandler{rm: rm}
}

type keyStateRequest struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// HandleKeyState replaces the held-key set.
func (h *GameplayHandler) HandleKeyState(client *ws.Client, msg ws.Message) {
	var req keyStateRequest
	if err := msg.Decode(&req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid key state"))
		return
	}
	if r := roomFor(h.rm, client); r != nil {
		r.SetKeys(game.KeyState{Up: req.Up, Down: req.Down, Left: req.Left, Right: req.Right})
	}
}

const (
	pointerDown = "down"
	pointerMove = "move"
	pointerUp   = "up"
)

type pointerRequest struct {
	Action string   `json:"action"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
}

// HandlePointer forwards touch and mouse events to the virtual joystick.
func (h *GameplayHandler) HandlePointer(client *ws.Client, msg ws.Message) {
	var req pointerRequest
	if err := msg.Decode(&req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid pointer data"))
		return
	}

	var p game.Vector2
	switch req.Action {
	case pointerDown, pointerMove:
		if req.X == nil || req.Y == nil {
			client.SendMessage(ws.NewErrorMessage("pointer position is required"))
			return
		}
		p = game.Vec(*req.X, *req.Y)
	case pointerUp:
	default:
		client.SendMessage(ws.NewErrorMessage("unknown pointer action: " + req.Action))
		return
	}

	r := roomFor(h.rm, client)
	if r == nil {
		return
	}
	switch req.Action {
	case pointerDown:
		r.PointerDown(p)
	case pointerMove:
		r.PointerMove(p)
	case pointerUp:
		r.PointerUp()
	}
}

// HandleActivateRecovery triggers the special recovery action.
func (h *GameplayHandler) HandleActivateRecovery(client *ws.Client, _ ws.Message) {
	if r := roomFor(h.rm, client); r != nil {
		r.ActivateRecovery()
	}
}

// HandleConfirm acknowledges the ending banner.
func (h *GameplayHandler) HandleConfirm(client *ws.Client, _ ws.Message) {
	if r := roomFor(h.rm, client); r != nil {
		r.Confirm()
	}
}
