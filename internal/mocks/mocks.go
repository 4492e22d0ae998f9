package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	grpcclient "messenger-service/internal/grpc"
	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

type FriendshipRepositoryMock struct {
	mock.Mock
}

func (m *FriendshipRepositoryMock) CreateRequest(ctx context.Context, senderID int, receiverID int) (models.Friendship, error) {
	args := m.Called(ctx, senderID, receiverID)
	var edge models.Friendship
	if val := args.Get(0); val != nil {
		edge = val.(models.Friendship)
	}
	return edge, args.Error(1)
}

func (m *FriendshipRepositoryMock) GetPending(ctx context.Context, senderID int, receiverID int) (models.Friendship, error) {
	args := m.Called(ctx, senderID, receiverID)
	var edge models.Friendship
	if val := args.Get(0); val != nil {
		edge = val.(models.Friendship)
	}
	return edge, args.Error(1)
}

func (m *FriendshipRepositoryMock) Accept(ctx context.Context, edgeID int) error {
	args := m.Called(ctx, edgeID)
	return args.Error(0)
}

func (m *FriendshipRepositoryMock) Delete(ctx context.Context, edgeID int) error {
	args := m.Called(ctx, edgeID)
	return args.Error(0)
}

func (m *FriendshipRepositoryMock) Between(ctx context.Context, userID int, otherID int) (models.Friendship, error) {
	args := m.Called(ctx, userID, otherID)
	var edge models.Friendship
	if val := args.Get(0); val != nil {
		edge = val.(models.Friendship)
	}
	return edge, args.Error(1)
}

func (m *FriendshipRepositoryMock) ListFriendIDs(ctx context.Context, userID int) ([]int, error) {
	args := m.Called(ctx, userID)
	var ids []int
	if val := args.Get(0); val != nil {
		ids = val.([]int)
	}
	return ids, args.Error(1)
}

func (m *FriendshipRepositoryMock) ListPendingSenderIDs(ctx context.Context, receiverID int) ([]int, error) {
	args := m.Called(ctx, receiverID)
	var ids []int
	if val := args.Get(0); val != nil {
		ids = val.([]int)
	}
	return ids, args.Error(1)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) CreateMessage(ctx context.Context, senderID int, receiverID int, content string) (models.Message, error) {
	args := m.Called(ctx, senderID, receiverID, content)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) GetConversation(ctx context.Context, userID int, otherID int) ([]models.Message, error) {
	args := m.Called(ctx, userID, otherID)
	var msgs []models.Message
	if val := args.Get(0); val != nil {
		msgs = val.([]models.Message)
	}
	return msgs, args.Error(1)
}

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) GetUser(ctx context.Context, userID int) (models.User, error) {
	args := m.Called(ctx, userID)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepositoryMock) BulkUsers(ctx context.Context, ids []int) ([]models.User, error) {
	args := m.Called(ctx, ids)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

func (m *UserRepositoryMock) Search(ctx context.Context, callerID int, query string) ([]models.User, error) {
	args := m.Called(ctx, callerID, query)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

type TrustCheckerMock struct {
	mock.Mock
}

func (m *TrustCheckerMock) CheckUser(ctx context.Context, userID int, username string) grpcclient.Verdict {
	args := m.Called(ctx, userID, username)
	var verdict grpcclient.Verdict
	if val := args.Get(0); val != nil {
		verdict = val.(grpcclient.Verdict)
	}
	return verdict
}

var _ repositories.FriendshipRepository = (*FriendshipRepositoryMock)(nil)
var _ repositories.MessageRepository = (*MessageRepositoryMock)(nil)
var _ repositories.UserRepository = (*UserRepositoryMock)(nil)
