package model

import "time"

// MessageType distinguishes plain chat text from synthesized feedback reports.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeFeedback MessageType = "feedback"
)

// SenderSelf is the sender ID used for messages written by the account owner.
const SenderSelf = "me"

// Message is one chat message in a (user, contact) conversation.
// Points is only meaningful for feedback messages and is always within [0,100].
type Message struct {
	ID        string
	UserID    string
	ContactID string
	SenderID  string
	Text      string
	Type      MessageType
	Points    int
	Timestamp time.Time
}
