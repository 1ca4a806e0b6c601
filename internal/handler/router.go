package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/lawchase-server/internal/room"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	rm       *room.Manager
	menu     *MenuHandler
	gameplay *GameplayHandler
}

// NewRouter creates a new message router.
func NewRouter(rm *room.Manager) *Router {
	return &Router{
		rm:       rm,
		menu:     NewMenuHandler(rm),
		gameplay: NewGameplayHandler(rm),
	}
}

// HandleConnect opens the client's room and shows the menu.
func (r *Router) HandleConnect(client *ws.Client) {
	r.rm.Open(client).SendMenu()
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Menu messages
	case ws.TypeSelectVariant:
		r.menu.HandleSelectVariant(cm.Client, msg)
	case ws.TypeReturnToMenu:
		r.menu.HandleReturnToMenu(cm.Client, msg)

	// Gameplay messages
	case ws.TypeKeyState:
		r.gameplay.HandleKeyState(cm.Client, msg)
	case ws.TypePointer:
		r.gameplay.HandlePointer(cm.Client, msg)
	case ws.TypeActivateRecovery:
		r.gameplay.HandleActivateRecovery(cm.Client, msg)
	case ws.TypeConfirm:
		r.gameplay.HandleConfirm(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect tears down the client's room.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.rm.Close(client.ID)
}

// roomFor returns the client's room, reporting an error to the client when it has none.
func roomFor(rm *room.Manager, client *ws.Client) *room.Room {
	r := rm.Get(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("no active room"))
	}
	return r
}
