package models

import "time"

// Friendship status values as stored.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// RelationStatus is the status of a pair as seen from one side.
type RelationStatus string

const (
	RelationNone            RelationStatus = "none"
	RelationPendingSent     RelationStatus = "pending_sent"
	RelationPendingIncoming RelationStatus = "pending_incoming"
	RelationAccepted        RelationStatus = "accepted"
)

// Friendship is the single edge between two users. At most one edge exists
// per pair regardless of direction.
type Friendship struct {
	ID         int       `db:"id" json:"id"`
	SenderID   int       `db:"sender_id" json:"sender_id"`
	ReceiverID int       `db:"receiver_id" json:"receiver_id"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// StatusFor maps the stored edge to the relation as seen by userID.
func (f Friendship) StatusFor(userID int) RelationStatus {
	if f.Status == FriendshipAccepted {
		return RelationAccepted
	}
	if f.ReceiverID == userID {
		return RelationPendingIncoming
	}
	return RelationPendingSent
}
