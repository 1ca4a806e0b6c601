package ws

import (
	"context"
	"log/slog"
	"sync"
)

// Hub maintains the set of active clients and serializes their callbacks.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage
	mu         sync.RWMutex
	done       chan struct{}

	// OnConnect is called after a client is registered.
	OnConnect func(client *Client)
	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called when a client disconnects.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		done:       make(chan struct{}),
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Join hands a new client to the hub. It reports false if the hub has
// already stopped.
func (h *Hub) Join(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Run starts the hub's main loop and returns when ctx is done, closing every
// remaining client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			slog.Info("client connected", "client", client.ID)
			if h.OnConnect != nil {
				h.OnConnect(client)
			}

		case client := <-h.Unregister:
			h.mu.Lock()
			_, ok := h.Clients[client]
			delete(h.Clients, client)
			h.mu.Unlock()
			if !ok {
				continue
			}
			client.Close()
			slog.Info("client disconnected", "client", client.ID)
			if h.OnDisconnect != nil {
				h.OnDisconnect(client)
			}

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.Clients))
	for c := range h.Clients {
		clients = append(clients, c)
	}
	h.Clients = make(map[*Client]bool)
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
		if h.OnDisconnect != nil {
			h.OnDisconnect(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
