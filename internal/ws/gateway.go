package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"

	"messenger-service/internal/auth"
	grpcclient "messenger-service/internal/grpc"
	"messenger-service/internal/models"
	"messenger-service/internal/observability"
	"messenger-service/internal/repositories"
)

// TrustChecker is the admission check consulted before a session goes online.
type TrustChecker interface {
	CheckUser(ctx context.Context, userID int, username string) grpcclient.Verdict
}

// Gateway owns the connection lifecycle: it authenticates new connections,
// consults the trust gate, registers presence and runs the per-connection
// read loop until the transport closes.
type Gateway struct {
	hub      *Hub
	router   *Router
	verifier *auth.Verifier
	users    repositories.UserRepository
	trust    TrustChecker
}

// NewGateway constructs a Gateway.
func NewGateway(hub *Hub, router *Router, verifier *auth.Verifier, users repositories.UserRepository, trust TrustChecker) *Gateway {
	return &Gateway{hub: hub, router: router, verifier: verifier, users: users, trust: trust}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle authenticates, upgrades and registers a client connection.
func (g *Gateway) Handle(c *gin.Context) {
	ctx, span := otel.Tracer("messenger-service/ws").Start(c.Request.Context(), "ws.handshake")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	userID, err := g.verifier.UserID(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	user, err := g.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn, user.ID)
	client.DeviceID = observability.DeviceIDFromRequest(c.Request)
	client.IP = observability.IPFromRequest(c.Request)
	client.RequestID = observability.RequestIDFromRequest(c.Request)
	client.TraceID = span.SpanContext().TraceID().String()

	verdict := g.trust.CheckUser(ctx, user.ID, user.Username)
	if !verdict.Allowed {
		observability.IncWSEvent("ws_rejected")
		g.publishSessionEvent(ctx, client, "ws_rejected", verdict.Reason)
		client.SendError(verdict.Reason)
		client.Close()
		return
	}

	if evicted := g.hub.Register(client); evicted != nil {
		// Re-login from elsewhere: the stale session is told why it is going
		// away, then closed. Its teardown cannot evict this registration
		// because Unregister compares clients.
		evicted.SendError("session replaced by a new login")
		evicted.Close()
		observability.IncWSEvent("ws_evicted")
	}

	observability.IncWSActive()
	observability.IncWSEvent("ws_connect")
	g.publishSessionEvent(ctx, client, "ws_connect", "")
	log.Printf("user %d connected conn_id=%s", user.ID, client.ConnID)

	// The request context dies when this handler returns; the read loop
	// outlives it, so detach cancellation while keeping trace values.
	go g.readLoop(context.WithoutCancel(ctx), client)
}

// readLoop dispatches client actions until the transport closes. Closing at
// any point is safe; unregister is guarded and idempotent.
func (g *Gateway) readLoop(ctx context.Context, client *Client) {
	var closeReason string
	defer func() {
		g.hub.Unregister(client)
		client.Close()
		observability.DecWSActive()
		observability.IncWSEvent("ws_disconnect")
		g.publishSessionEvent(ctx, client, "ws_disconnect", closeReason)
		log.Printf("user %d disconnected conn_id=%s", client.UserID, client.ConnID)
	}()

	for {
		_, payload, err := client.conn.ReadMessage()
		if err != nil {
			closeReason = err.Error()
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				observability.IncWSEvent("ws_error")
				g.publishSessionEvent(ctx, client, "ws_error", closeReason)
			}
			return
		}

		var action models.ClientAction
		if err := json.Unmarshal(payload, &action); err != nil {
			client.SendError("invalid payload")
			continue
		}

		switch action.Type {
		case models.ActionSendMessage:
			g.router.Send(ctx, client, action.ToUserID, action.Content)
		default:
			client.SendError("unknown action")
		}
	}
}

func (g *Gateway) publishSessionEvent(ctx context.Context, client *Client, event, reason string) {
	payload := map[string]interface{}{
		"ws": map[string]interface{}{
			"event":       event,
			"conn_id":     client.ConnID,
			"duration_ms": time.Since(client.ConnectedAt).Milliseconds(),
			"reason":      reason,
		},
		"identity": map[string]interface{}{
			"user_id":   client.UserID,
			"device_id": client.DeviceID,
			"ip":        client.IP,
		},
	}
	headers := observability.BuildHeaders(client.RequestID, client.TraceID)
	_ = observability.PublishEvent(ctx, "ws_events.sessions", observability.EventEnvelope{
		EventType: "ws_events",
		EventName: event,
		Service:   "messenger-service",
		Payload:   payload,
	}, headers)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		const prefix = "Bearer "
		if len(header) > len(prefix) && header[:len(prefix)] == prefix {
			return header[len(prefix):]
		}
		return ""
	}
	return c.Query("token")
}
