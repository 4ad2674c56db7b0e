package schema

import (
	"time"
)

const (
	MatchCollection = "matches"
)

const (
	MatchSuggested = "suggested"
	MatchRequested = "requested"
	MatchAccepted  = "accepted"
	MatchDeclined  = "declined"
)

// ConnectionPayload carries the optional acceptance message a helper
// attaches when accepting a match.
type ConnectionPayload struct {
	Message  string `json:"message,omitempty" bson:"message,omitempty"`
	NextStep string `json:"next_step,omitempty" bson:"next_step,omitempty"`
}

// Match - one helper's relationship to one help request. The id is a pure
// function of (request, helper) so there is never more than one record per
// pair and regeneration is idempotent by construction.
type Match struct {
	ID                string             `json:"id" bson:"id"`
	RequestID         string             `json:"request_id" bson:"request_id"`
	RequesterID       string             `json:"requester_id" bson:"requester_id"`
	HelperID          string             `json:"helper_id" bson:"helper_id"`
	Score             float64            `json:"score" bson:"score"`
	Reasons           []string           `json:"reasons" bson:"reasons"`
	State             string             `json:"state" bson:"state"`
	ConnectionPayload *ConnectionPayload `json:"connection_payload,omitempty" bson:"connection_payload,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// Progressed reports whether a match has moved past the initial suggestion.
// A progressed match is never overwritten by regeneration.
func (m Match) Progressed() bool {
	switch m.State {
	case MatchRequested, MatchAccepted, MatchDeclined:
		return true
	}
	return false
}
