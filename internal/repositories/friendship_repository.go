package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"messenger-service/internal/models"
)

var (
	ErrRelationshipExists = errors.New("relationship exists")
	ErrRequestNotFound    = errors.New("friend request not found")
)

const pqUniqueViolation = "23505"

// FriendshipRepository abstracts the social graph store.
type FriendshipRepository interface {
	CreateRequest(ctx context.Context, senderID int, receiverID int) (models.Friendship, error)
	GetPending(ctx context.Context, senderID int, receiverID int) (models.Friendship, error)
	Accept(ctx context.Context, edgeID int) error
	Delete(ctx context.Context, edgeID int) error
	Between(ctx context.Context, userID int, otherID int) (models.Friendship, error)
	ListFriendIDs(ctx context.Context, userID int) ([]int, error)
	ListPendingSenderIDs(ctx context.Context, receiverID int) ([]int, error)
}

// FriendshipRepo is a sqlx implementation of FriendshipRepository.
type FriendshipRepo struct {
	db *sqlx.DB
}

// NewFriendshipRepo constructs a FriendshipRepo.
func NewFriendshipRepo(db *sqlx.DB) *FriendshipRepo {
	return &FriendshipRepo{db: db}
}

// CreateRequest inserts a pending edge. The pair-unique index is the
// authoritative guard: a concurrent duplicate in either direction surfaces
// as ErrRelationshipExists, not as a second edge.
func (r *FriendshipRepo) CreateRequest(ctx context.Context, senderID int, receiverID int) (models.Friendship, error) {
	var edge models.Friendship
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO friendships (sender_id, receiver_id, status) VALUES ($1, $2, 'pending')
         RETURNING id, sender_id, receiver_id, status, created_at`,
		senderID, receiverID).StructScan(&edge)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return models.Friendship{}, ErrRelationshipExists
		}
		return models.Friendship{}, err
	}
	return edge, nil
}

// GetPending finds the pending edge with the exact direction sender→receiver.
func (r *FriendshipRepo) GetPending(ctx context.Context, senderID int, receiverID int) (models.Friendship, error) {
	var edge models.Friendship
	err := r.db.GetContext(ctx, &edge,
		`SELECT id, sender_id, receiver_id, status, created_at FROM friendships
         WHERE sender_id=$1 AND receiver_id=$2 AND status='pending'`,
		senderID, receiverID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Friendship{}, ErrRequestNotFound
	}
	return edge, err
}

// Accept transitions a pending edge to accepted.
func (r *FriendshipRepo) Accept(ctx context.Context, edgeID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE friendships SET status='accepted' WHERE id=$1 AND status='pending'`, edgeID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Delete removes an edge entirely. Used for rejections; a rejected pair must
// start over with a fresh request.
func (r *FriendshipRepo) Delete(ctx context.Context, edgeID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM friendships WHERE id=$1`, edgeID)
	return err
}

// Between returns the single edge between two users in either direction.
func (r *FriendshipRepo) Between(ctx context.Context, userID int, otherID int) (models.Friendship, error) {
	var edge models.Friendship
	err := r.db.GetContext(ctx, &edge,
		`SELECT id, sender_id, receiver_id, status, created_at FROM friendships
         WHERE (sender_id=$1 AND receiver_id=$2) OR (sender_id=$2 AND receiver_id=$1)`,
		userID, otherID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Friendship{}, ErrRequestNotFound
	}
	return edge, err
}

// ListFriendIDs returns ids of users with an accepted edge with userID,
// regardless of which side initiated.
func (r *FriendshipRepo) ListFriendIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids,
		`SELECT CASE WHEN sender_id=$1 THEN receiver_id ELSE sender_id END FROM friendships
         WHERE (sender_id=$1 OR receiver_id=$1) AND status='accepted'`,
		userID)
	return ids, err
}

// ListPendingSenderIDs returns ids of users with a pending request to receiverID.
func (r *FriendshipRepo) ListPendingSenderIDs(ctx context.Context, receiverID int) ([]int, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids,
		`SELECT sender_id FROM friendships WHERE receiver_id=$1 AND status='pending'`,
		receiverID)
	return ids, err
}
