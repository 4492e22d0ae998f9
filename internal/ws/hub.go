package ws

import (
	"sync"
)

// Hub is the presence registry: the single source of truth for which users
// are online and on which connection. It maintains a bijection between user
// ids and clients over the currently connected subset. Nothing here is
// persisted; every user is offline after a restart until they reconnect.
type Hub struct {
	byUser   map[int]*Client
	byClient map[*Client]int
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		byUser:   make(map[int]*Client),
		byClient: make(map[*Client]int),
	}
}

// Register inserts the mapping for the client's user. If the user already
// has a live client, that client is evicted from the registry and returned
// so the caller can close it (evict-and-close re-login policy).
func (h *Hub) Register(client *Client) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	evicted := h.byUser[client.UserID]
	if evicted != nil {
		delete(h.byClient, evicted)
	}
	h.byUser[client.UserID] = client
	h.byClient[client] = client.UserID
	return evicted
}

// Unregister removes the client, but only while it is still the registered
// connection for its user. A stale socket's teardown never evicts a fresher
// registration for the same user.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userID, ok := h.byClient[client]
	if !ok {
		return
	}
	delete(h.byClient, client)
	if h.byUser[userID] == client {
		delete(h.byUser, userID)
	}
}

// Lookup resolves a user id to its live client.
func (h *Hub) Lookup(userID int) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.byUser[userID]
	return client, ok
}

// UserOf is the inverse lookup: the user registered for this client, if any.
func (h *Hub) UserOf(client *Client) (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	userID, ok := h.byClient[client]
	return userID, ok
}

// Online reports whether the user currently has a registered connection.
func (h *Hub) Online(userID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.byUser[userID]
	return ok
}

// Count returns the number of online users.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser)
}
