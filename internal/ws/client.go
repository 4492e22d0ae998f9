package ws

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"messenger-service/internal/models"
)

// wsConn is the transport surface the client needs. *websocket.Conn
// satisfies it; tests substitute a recorder.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Client is the live connection handle for one online user. Writes are
// serialized: pushes originate from HTTP handlers and from other clients'
// read loops concurrently.
type Client struct {
	ConnID      string
	UserID      int
	DeviceID    string
	IP          string
	RequestID   string
	TraceID     string
	ConnectedAt time.Time

	conn    wsConn
	writeMu sync.Mutex
}

// NewClient wraps an upgraded connection.
func NewClient(conn *websocket.Conn, userID int) *Client {
	return newClient(conn, userID)
}

func newClient(conn wsConn, userID int) *Client {
	return &Client{
		ConnID:      newConnID(),
		UserID:      userID,
		ConnectedAt: time.Now(),
		conn:        conn,
	}
}

// Send pushes one event to the client.
func (c *Client) Send(event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// SendError pushes an error event, ignoring write failures; the read loop
// will observe the broken transport.
func (c *Client) SendError(msg string) {
	_ = c.Send(models.Event{Type: models.EventError, Error: msg})
}

// Close tears down the transport. Safe to call more than once.
func (c *Client) Close() error {
	return c.conn.Close()
}

func newConnID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
