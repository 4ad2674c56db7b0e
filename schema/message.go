package schema

import (
	"time"
)

const (
	MessageCollection = "messages"
)

const (
	RoleRequester = "requester"
	RoleHelper    = "helper"
)

// ConnectionMessage - a chat message exchanged on an accepted match.
type ConnectionMessage struct {
	ID         string    `json:"id" bson:"id"`
	MatchID    string    `json:"match_id" bson:"match_id"`
	SenderID   string    `json:"sender_id" bson:"sender_id"`
	SenderRole string    `json:"sender_role" bson:"sender_role"`
	Text       string    `json:"text" bson:"text"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
