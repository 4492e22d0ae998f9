package models

// User mirrors the identity store's user record. This service only reads it.
type User struct {
	ID          int    `db:"id" json:"id"`
	Username    string `db:"username" json:"username"`
	DisplayName string `db:"display_name" json:"display_name"`
	Avatar      string `db:"avatar" json:"avatar,omitempty"`
}

// UserWithStatus is a search hit annotated with the caller's relationship to it.
type UserWithStatus struct {
	User
	Status RelationStatus `json:"status"`
}
