package models

// Event type values pushed to websocket clients.
const (
	EventNewMessage       = "new_message"
	EventNewFriendRequest = "new_friend_request"
	EventFriendAccepted   = "friend_accepted"
	EventError            = "error"
)

// Event is the envelope for every server→client websocket push.
type Event struct {
	Type       string   `json:"type"`
	Message    *Message `json:"message,omitempty"`
	FromUserID int      `json:"from_user_id,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// ClientAction is a client→server frame read off the websocket.
type ClientAction struct {
	Type     string `json:"type"`
	ToUserID int    `json:"to_user_id,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ActionSendMessage is the only client-initiated websocket action.
const ActionSendMessage = "send_message"
