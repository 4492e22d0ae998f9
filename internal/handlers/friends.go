package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
	"messenger-service/internal/ws"
)

// FriendsHandler implements the friendship state machine over HTTP.
type FriendsHandler struct {
	friendships repositories.FriendshipRepository
	users       repositories.UserRepository
	hub         *ws.Hub
}

// NewFriendsHandler builds a FriendsHandler.
func NewFriendsHandler(friendships repositories.FriendshipRepository, users repositories.UserRepository, hub *ws.Hub) *FriendsHandler {
	return &FriendsHandler{friendships: friendships, users: users, hub: hub}
}

// SendRequest creates a pending edge towards another user and notifies them
// if they are online.
func (h *FriendsHandler) SendRequest(c *gin.Context) {
	var req struct {
		ReceiverID int `json:"receiver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("userID")
	if req.ReceiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.users.GetUser(c.Request.Context(), req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify receiver"})
		return
	}

	// Fast-path existence check; the unique index remains the authoritative
	// guard against concurrent duplicates.
	if _, err := h.friendships.Between(c.Request.Context(), userID, req.ReceiverID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "relationship exists"})
		return
	} else if !errors.Is(err, repositories.ErrRequestNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check relationship"})
		return
	}

	edge, err := h.friendships.CreateRequest(c.Request.Context(), userID, req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrRelationshipExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "relationship exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create request"})
		return
	}

	if receiver, online := h.hub.Lookup(req.ReceiverID); online {
		_ = receiver.Send(models.Event{Type: models.EventNewFriendRequest, FromUserID: userID})
	}

	c.JSON(http.StatusCreated, gin.H{"id": edge.ID})
}

// Respond accepts or rejects a pending request addressed to the caller.
func (h *FriendsHandler) Respond(c *gin.Context) {
	var req struct {
		SenderID int    `json:"sender_id" binding:"required"`
		Action   string `json:"action" binding:"required,oneof=accept reject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetInt("userID")
	edge, err := h.friendships.GetPending(c.Request.Context(), req.SenderID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load request"})
		return
	}

	switch req.Action {
	case "accept":
		if err := h.friendships.Accept(c.Request.Context(), edge.ID); err != nil {
			if errors.Is(err, repositories.ErrRequestNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not accept request"})
			return
		}
		if requester, online := h.hub.Lookup(req.SenderID); online {
			_ = requester.Send(models.Event{Type: models.EventFriendAccepted, FromUserID: userID})
		}
		c.JSON(http.StatusOK, gin.H{"message": "accepted"})
	case "reject":
		// Rejection deletes the edge; the pair may start over later.
		if err := h.friendships.Delete(c.Request.Context(), edge.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reject request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "rejected"})
	}
}

// ListFriends returns users with an accepted edge with the caller.
func (h *FriendsHandler) ListFriends(c *gin.Context) {
	userID := c.GetInt("userID")

	ids, err := h.friendships.ListFriendIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	friends, err := h.users.BulkUsers(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friend info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// ListPending returns users whose requests to the caller are pending.
func (h *FriendsHandler) ListPending(c *gin.Context) {
	userID := c.GetInt("userID")

	ids, err := h.friendships.ListPendingSenderIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pending requests"})
		return
	}

	senders, err := h.users.BulkUsers(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sender info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": senders})
}

// Status derives the relation between the caller and another user.
func (h *FriendsHandler) Status(c *gin.Context) {
	otherID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	userID := c.GetInt("userID")
	status, err := h.statusOf(c, userID, otherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// SearchUsers finds users by name, each annotated with the caller's relation.
func (h *FriendsHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"users": []models.UserWithStatus{}})
		return
	}

	userID := c.GetInt("userID")
	hits, err := h.users.Search(c.Request.Context(), userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}

	results := make([]models.UserWithStatus, 0, len(hits))
	for _, hit := range hits {
		status, err := h.statusOf(c, userID, hit.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load status"})
			return
		}
		results = append(results, models.UserWithStatus{User: hit, Status: status})
	}

	c.JSON(http.StatusOK, gin.H{"users": results})
}

func (h *FriendsHandler) statusOf(c *gin.Context, userID, otherID int) (models.RelationStatus, error) {
	edge, err := h.friendships.Between(c.Request.Context(), userID, otherID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return models.RelationNone, nil
		}
		return models.RelationNone, err
	}
	return edge.StatusFor(userID), nil
}

// OnlineFriendIDs filters the caller's friends down to those currently online.
func (h *FriendsHandler) OnlineFriendIDs(c *gin.Context) {
	userID := c.GetInt("userID")

	ids, err := h.friendships.ListFriendIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	online := lo.Filter(ids, func(id int, _ int) bool {
		return h.hub.Online(id)
	})

	c.JSON(http.StatusOK, gin.H{"online": online})
}
