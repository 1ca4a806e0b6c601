package room

import (
	"log/slog"
	"sync"

	"github.com/ugaemi/lawchase-server/internal/ws"
)

// Manager tracks one room per connected client.
type Manager struct {
	opts  Options
	rooms map[string]*Room // client ID -> room
	mu    sync.RWMutex
}

// NewManager creates a new room manager.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:  opts,
		rooms: make(map[string]*Room),
	}
}

// Open creates and starts a room for client, replacing any previous room it had.
func (m *Manager) Open(client *ws.Client) *Room {
	m.mu.Lock()
	old := m.rooms[client.ID]

	existing := make(map[string]bool, len(m.rooms))
	for _, r := range m.rooms {
		existing[r.Code] = true
	}
	r := NewRoom(GenerateCode(existing), client, m.opts)
	m.rooms[client.ID] = r
	m.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	r.StartLoop()

	slog.Info("room opened", "room", r.Code, "client", client.ID)
	return r
}

// Get returns the room owned by a client.
func (m *Manager) Get(clientID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[clientID]
}

// Close stops and removes a client's room.
func (m *Manager) Close(clientID string) {
	m.mu.Lock()
	r, ok := m.rooms[clientID]
	delete(m.rooms, clientID)
	m.mu.Unlock()

	if !ok {
		return
	}
	r.Stop()
	slog.Info("room closed", "room", r.Code, "client", clientID)
}

// RoomCount returns the number of active rooms.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// CloseAll stops every room.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	rooms := m.rooms
	m.rooms = make(map[string]*Room)
	m.mu.Unlock()

	for _, r := range rooms {
		r.Stop()
	}
}
