// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeWait = 10 * time.Second

// Event is one committed change to the directory, pushed to every viewer.
type Event struct {
	Type  string    `json:"type"`
	ID    string    `json:"id,omitempty"`
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

const (
	EventCreated  = "datacenter.created"
	EventUpdated  = "datacenter.updated"
	EventDeleted  = "datacenter.deleted"
	EventReplaced = "datacenter.replaced"
)

type client struct {
	conn *websocket.Conn
	// gorilla allows one concurrent writer per connection.
	mu sync.Mutex
}

func (c *client) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub keeps the open change-feed connections, keyed by a per-connection id.
type Hub struct {
	clients map[string]*client
	mu      sync.RWMutex
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		log:     log.With().Str("component", "ws-hub").Logger(),
	}
}

func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[clientID] = &client{conn: conn}
	h.log.Debug().Str("client", clientID).Int("clients", len(h.clients)).Msg("websocket client registered")
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[clientID]; ok {
		delete(h.clients, clientID)
		h.log.Debug().Str("client", clientID).Msg("websocket client unregistered")
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends ev to every client. Clients that cannot be written to are
// dropped; their read loop will notice the closed connection.
func (h *Hub) Broadcast(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Msg("encode websocket event")
		return
	}

	h.mu.RLock()
	targets := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mu.RUnlock()

	for id, c := range targets {
		if err := c.write(msg); err != nil {
			h.log.Warn().Err(err).Str("client", id).Msg("websocket write failed, dropping client")
			h.Unregister(id)
			_ = c.conn.Close()
		}
	}
}
