package matching

import (
	"fmt"

	"github.com/campusconnect/helpmatch-api/schema"
)

// The lifecycle only ever moves forward:
//
//	suggested -> requested -> accepted | declined
//
// accepted and declined are terminal; there is no un-declining and no
// automatic timeout back out of requested.
var requiredState = map[string]string{
	schema.MatchRequested: schema.MatchSuggested,
	schema.MatchAccepted:  schema.MatchRequested,
	schema.MatchDeclined:  schema.MatchRequested,
}

// InvalidTransitionError is the conflict condition raised when a lifecycle
// action is attempted from a state that does not permit it. It names the
// current state so the caller can decide whether to refresh or surface.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s", e.From)
}

// PriorState returns the only state a match may be in for it to move to
// the given target state.
func PriorState(to string) (string, bool) {
	from, ok := requiredState[to]
	return from, ok
}

// ValidateTransition checks a single lifecycle step.
func ValidateTransition(from, to string) error {
	required, ok := requiredState[to]
	if !ok || from != required {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// DecisionState maps a respond action to its target state. Both the
// decision form (accepted/declined) and the action form (accept/decline)
// are accepted, matching what clients already send.
func DecisionState(decision, action string) (string, bool) {
	switch decision {
	case schema.MatchAccepted, schema.MatchDeclined:
		return decision, true
	}
	switch action {
	case "accept":
		return schema.MatchAccepted, true
	case "decline":
		return schema.MatchDeclined, true
	}
	return "", false
}
