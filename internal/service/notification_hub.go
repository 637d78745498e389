package service

import (
	"log/slog"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// WSClient is one websocket connection of a signed-in principal. A write
// mutex serializes frames since gorilla allows only one concurrent writer.
type WSClient struct {
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) WriteJSON(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, raw)
}

// RealtimeHub tracks live websocket connections per recipient. A recipient
// may hold several connections (multiple tabs or devices).
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(recipient string, client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[recipient]
	if !ok {
		set = make(map[*WSClient]struct{})
		h.clients[recipient] = set
	}
	set[client] = struct{}{}
}

func (h *RealtimeHub) Unregister(recipient string, client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[recipient]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(h.clients, recipient)
		}
	}
}

// Push delivers payload to every live connection of recipient, best effort.
// A failed write drops that connection from the registry.
func (h *RealtimeHub) Push(recipient string, payload interface{}) {
	h.mu.RLock()
	set := h.clients[recipient]
	targets := make([]*WSClient, 0, len(set))
	for c := range set {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.WriteJSON(payload); err != nil {
			slog.Debug("realtime push failed", "recipient", recipient, "error", err)
			h.Unregister(recipient, c)
			_ = c.Conn.Close()
		}
	}
}

// Online reports whether recipient has at least one live connection.
func (h *RealtimeHub) Online(recipient string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[recipient]) > 0
}
