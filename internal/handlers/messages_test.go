package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/mocks"
	"messenger-service/internal/models"
)

func setupMessagesRouter(handler *MessagesHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", 1)
		c.Next()
	})
	r.GET("/messages/:user_id", handler.GetHistory)
	return r
}

func TestGetHistorySuccess(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	users := new(mocks.UserRepositoryMock)
	handler := NewMessagesHandler(messages, users)
	router := setupMessagesRouter(handler)

	now := time.Now()
	conversation := []models.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hey", CreatedAt: now.Add(-time.Minute)},
		{ID: 2, SenderID: 2, ReceiverID: 1, Content: "hi back", CreatedAt: now},
	}
	messages.On("GetConversation", mock.Anything, 1, 2).Return(conversation, nil).Once()
	users.On("BulkUsers", mock.Anything, []int{1, 2}).
		Return([]models.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []struct {
			ID             int    `json:"id"`
			Content        string `json:"content"`
			SenderUsername string `json:"sender_username"`
		} `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Messages, 2)
	require.Equal(t, "alice", resp.Messages[0].SenderUsername)
	require.Equal(t, "bob", resp.Messages[1].SenderUsername)
	require.Equal(t, "hey", resp.Messages[0].Content)

	messages.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestGetHistoryEmptyConversation(t *testing.T) {
	messages := new(mocks.MessageRepositoryMock)
	users := new(mocks.UserRepositoryMock)
	handler := NewMessagesHandler(messages, users)
	router := setupMessagesRouter(handler)

	messages.On("GetConversation", mock.Anything, 1, 2).Return([]models.Message{}, nil).Once()
	users.On("BulkUsers", mock.Anything, []int{}).Return([]models.User{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/messages/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Empty(t, resp["messages"])
}

func TestGetHistoryInvalidUserID(t *testing.T) {
	handler := NewMessagesHandler(new(mocks.MessageRepositoryMock), new(mocks.UserRepositoryMock))
	router := setupMessagesRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/messages/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
