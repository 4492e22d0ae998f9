package ws

import (
	"context"
	"log"
	"strings"

	"messenger-service/internal/models"
	"messenger-service/internal/observability"
	"messenger-service/internal/repositories"
)

// Router validates, persists and delivers direct messages. It reads presence
// but never mutates it; the gateway owns registration.
type Router struct {
	hub      *Hub
	messages repositories.MessageRepository
}

// NewRouter constructs a Router.
func NewRouter(hub *Hub, messages repositories.MessageRepository) *Router {
	return &Router{hub: hub, messages: messages}
}

// Send routes one message from the given connection. The sender identity
// comes from the inverse presence lookup, never from the payload. Persistence
// commits first; delivery is best-effort afterwards. A message persisted but
// not delivered is picked up by the recipient's next history fetch.
func (r *Router) Send(ctx context.Context, client *Client, toUserID int, content string) {
	senderID, ok := r.hub.UserOf(client)
	if !ok {
		// A send from a connection that lost its registration is answered
		// with an explicit error rather than dropped.
		observability.IncMessageRouted("unauthenticated")
		client.SendError("unauthenticated")
		return
	}

	if strings.TrimSpace(content) == "" || toUserID <= 0 {
		observability.IncMessageRouted("invalid")
		client.SendError("invalid message")
		return
	}

	msg, err := r.messages.CreateMessage(ctx, senderID, toUserID, content)
	if err != nil {
		log.Printf("message persist failed sender=%d receiver=%d: %v", senderID, toUserID, err)
		observability.IncMessageRouted("persist_error")
		client.SendError("failed to store message")
		return
	}

	event := models.Event{Type: models.EventNewMessage, Message: &msg}

	if receiver, online := r.hub.Lookup(toUserID); online {
		if err := receiver.Send(event); err != nil {
			// Teardown belongs to the receiver's gateway read loop; a broken
			// transport fails its next read there. The message is persisted,
			// so the recipient replays it from history.
			log.Printf("websocket write error user=%d: %v", toUserID, err)
			observability.IncMessageRouted("delivery_error")
		} else {
			observability.IncMessageRouted("delivered")
		}
	} else {
		observability.IncMessageRouted("offline")
	}

	// Delivery echo back to the sender confirms the write.
	if err := client.Send(event); err != nil {
		log.Printf("websocket echo error user=%d: %v", senderID, err)
	}
}
