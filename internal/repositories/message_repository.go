package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"messenger-service/internal/models"
)

// MessageRepository is the append-only direct message log.
type MessageRepository interface {
	CreateMessage(ctx context.Context, senderID int, receiverID int, content string) (models.Message, error)
	GetConversation(ctx context.Context, userID int, otherID int) ([]models.Message, error)
}

// MessageRepo is a sqlx-backed repository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// CreateMessage appends a message. The id and timestamp are server-assigned.
func (r *MessageRepo) CreateMessage(ctx context.Context, senderID int, receiverID int, content string) (models.Message, error) {
	var msg models.Message
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content) VALUES ($1, $2, $3)
         RETURNING id, sender_id, receiver_id, content, created_at`,
		senderID, receiverID, content).StructScan(&msg)
	return msg, err
}

// GetConversation returns all messages between the pair, oldest first.
// No pagination; history is replayed in full.
func (r *MessageRepo) GetConversation(ctx context.Context, userID int, otherID int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT id, sender_id, receiver_id, content, created_at FROM messages
         WHERE (sender_id=$1 AND receiver_id=$2) OR (sender_id=$2 AND receiver_id=$1)
         ORDER BY created_at ASC`,
		userID, otherID)
	return msgs, err
}
