package schema

import (
	"time"
)

const (
	RequestCollection = "requests"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	FormatChat  = "chat"
	FormatCall  = "call"
	FormatAsync = "async"
)

// HelpRequest - a need described by a requester. Immutable for matching
// purposes once created.
type HelpRequest struct {
	ID          string    `json:"id" bson:"id"`
	RequesterID string    `json:"requester_id" bson:"requester_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Urgency     string    `json:"urgency" bson:"urgency"`
	Format      string    `json:"format" bson:"format"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidUrgency reports whether u is one of the allowed urgency levels.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// ValidFormat reports whether f is one of the allowed request formats.
func ValidFormat(f string) bool {
	switch f {
	case FormatChat, FormatCall, FormatAsync:
		return true
	}
	return false
}
