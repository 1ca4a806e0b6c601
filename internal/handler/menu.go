package handler

import (
	"log/slog"

	"github.com/ugaemi/lawchase-server/internal/game"
	"github.com/ugaemi/lawchase-server/internal/room"
	"github.com/ugaemi/lawchase-server/internal/ws"
)

// MenuHandler handles variant selection and returning to the menu.
type MenuHandler struct {
	rm *room.Manager
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(rm *room.Manager) *MenuHandler {
	return &MenuHandler{rm: rm}
}

type selectVariantRequest struct {
	Variant string `json:"variant"`
}

// HandleSelectVariant starts a fresh session of the chosen variant.
func (h *MenuHandler) HandleSelectVariant(client *ws.Client, msg ws.Message) {
	var req selectVariantRequest
	if err := msg.Decode(&req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid variant data"))
		return
	}
	v, err := game.ParseVariant(req.Variant)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	r := roomFor(h.rm, client)
	if r == nil {
		return
	}
	r.SelectVariant(v)

	slog.Debug("variant selected", "client", client.ID, "room", r.Code, "variant", v.String())
}

// HandleReturnToMenu aborts the current session and shows the menu.
func (h *MenuHandler) HandleReturnToMenu(client *ws.Client, _ ws.Message) {
	if r := roomFor(h.rm, client); r != nil {
		r.ReturnToMenu()
	}
}
