package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/auth"
	grpcclient "messenger-service/internal/grpc"
	"messenger-service/internal/mocks"
	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

const testSecret = "gateway-test-secret"

func setupGateway(t *testing.T, users *mocks.UserRepositoryMock, trust *mocks.TrustCheckerMock) (*httptest.Server, *Hub, *mocks.MessageRepositoryMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	messageRepo := new(mocks.MessageRepositoryMock)
	router := NewRouter(hub, messageRepo)
	verifier := auth.NewVerifier(testSecret)
	gateway := NewGateway(hub, router, verifier, users, trust)

	engine := gin.New()
	engine.GET("/ws", gateway.Handle)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server, hub, messageRepo
}

func wsURL(server *httptest.Server, token string) string {
	url := strings.Replace(server.URL, "http", "ws", 1) + "/ws"
	if token != "" {
		url += "?token=" + token
	}
	return url
}

func signToken(t *testing.T, userID int) string {
	t.Helper()
	token, err := auth.NewVerifier(testSecret).Sign(userID, time.Minute)
	require.NoError(t, err)
	return token
}

func TestGatewayRejectsMissingToken(t *testing.T) {
	server, _, _ := setupGateway(t, new(mocks.UserRepositoryMock), new(mocks.TrustCheckerMock))

	resp, err := http.Get(server.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGatewayRejectsInvalidToken(t *testing.T) {
	server, _, _ := setupGateway(t, new(mocks.UserRepositoryMock), new(mocks.TrustCheckerMock))

	resp, err := http.Get(server.URL + "/ws?token=garbage")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGatewayRejectsUnknownUser(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	users.On("GetUser", mock.Anything, 1).Return(models.User{}, repositories.ErrUserNotFound).Once()
	server, _, _ := setupGateway(t, users, new(mocks.TrustCheckerMock))

	resp, err := http.Get(server.URL + "/ws?token=" + signToken(t, 1))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	users.AssertExpectations(t)
}

func TestGatewayBannedUserGetsReasonThenClose(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	users.On("GetUser", mock.Anything, 1).Return(models.User{ID: 1, Username: "alice"}, nil).Once()
	trust := new(mocks.TrustCheckerMock)
	trust.On("CheckUser", mock.Anything, 1, "alice").
		Return(grpcclient.Verdict{Allowed: false, Reason: "account suspended"}).Once()

	server, hub, _ := setupGateway(t, users, trust)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, 1)), nil)
	require.NoError(t, err)
	defer conn.Close()

	var event models.Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, models.EventError, event.Type)
	require.Equal(t, "account suspended", event.Error)

	// A rejected session never registers presence.
	require.False(t, hub.Online(1))
	trust.AssertExpectations(t)
}

func TestGatewaySendMessageRoundTrip(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	users.On("GetUser", mock.Anything, 1).Return(models.User{ID: 1, Username: "alice"}, nil).Once()
	trust := new(mocks.TrustCheckerMock)
	trust.On("CheckUser", mock.Anything, 1, "alice").Return(grpcclient.Verdict{Allowed: true}).Once()

	server, hub, messageRepo := setupGateway(t, users, trust)

	stored := models.Message{ID: 3, SenderID: 1, ReceiverID: 2, Content: "hi"}
	messageRepo.On("CreateMessage", mock.Anything, 1, 2, "hi").Return(stored, nil).Once()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, 1)), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Online(1) }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(models.ClientAction{Type: models.ActionSendMessage, ToUserID: 2, Content: "hi"}))

	var event models.Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, models.EventNewMessage, event.Type)
	require.Equal(t, stored.ID, event.Message.ID)

	messageRepo.AssertExpectations(t)
	trust.AssertExpectations(t)
}

func TestGatewayUnknownActionKeepsConnectionOpen(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	users.On("GetUser", mock.Anything, 1).Return(models.User{ID: 1, Username: "alice"}, nil).Once()
	trust := new(mocks.TrustCheckerMock)
	trust.On("CheckUser", mock.Anything, 1, "alice").Return(grpcclient.Verdict{Allowed: true}).Once()

	server, hub, _ := setupGateway(t, users, trust)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, 1)), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(models.ClientAction{Type: "dance"}))

	var event models.Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, models.EventError, event.Type)
	require.True(t, hub.Online(1))
}

func TestGatewayReLoginEvictsOldSession(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	users.On("GetUser", mock.Anything, 1).Return(models.User{ID: 1, Username: "alice"}, nil).Twice()
	trust := new(mocks.TrustCheckerMock)
	trust.On("CheckUser", mock.Anything, 1, "alice").Return(grpcclient.Verdict{Allowed: true}).Twice()

	server, hub, _ := setupGateway(t, users, trust)

	first, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, 1)), nil)
	require.NoError(t, err)
	defer first.Close()

	require.Eventually(t, func() bool { return hub.Online(1) }, time.Second, 10*time.Millisecond)
	firstClient, _ := hub.Lookup(1)

	second, _, err := websocket.DefaultDialer.Dial(wsURL(server, signToken(t, 1)), nil)
	require.NoError(t, err)
	defer second.Close()

	// The old session is told it was replaced, then its socket closes.
	var event models.Event
	require.NoError(t, first.ReadJSON(&event))
	require.Equal(t, models.EventError, event.Type)

	require.Eventually(t, func() bool {
		current, ok := hub.Lookup(1)
		return ok && current != firstClient
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, 1, hub.Count())
}
