package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

// MessagesHandler serves direct message history.
type MessagesHandler struct {
	messages repositories.MessageRepository
	users    repositories.UserRepository
}

// NewMessagesHandler builds a MessagesHandler.
func NewMessagesHandler(messages repositories.MessageRepository, users repositories.UserRepository) *MessagesHandler {
	return &MessagesHandler{messages: messages, users: users}
}

// GetHistory returns the full conversation between the caller and another
// user, oldest first. Unpaginated.
func (h *MessagesHandler) GetHistory(c *gin.Context) {
	otherID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	userID := c.GetInt("userID")
	msgs, err := h.messages.GetConversation(c.Request.Context(), userID, otherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	senderIDs := lo.Uniq(lo.Map(msgs, func(m models.Message, _ int) int {
		return m.SenderID
	}))
	senders, err := h.users.BulkUsers(c.Request.Context(), senderIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load senders"})
		return
	}
	nameByID := map[int]string{}
	for _, u := range senders {
		nameByID[u.ID] = u.Username
	}

	type messageResponse struct {
		models.Message
		SenderUsername string `json:"sender_username,omitempty"`
	}

	resp := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, messageResponse{Message: m, SenderUsername: nameByID[m.SenderID]})
	}

	c.JSON(http.StatusOK, gin.H{"messages": resp})
}
