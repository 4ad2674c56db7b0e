package store

import (
	"time"

	"github.com/campusconnect/helpmatch-api/schema"
)

// HelpmatchStore is the storage port of the matching platform. Handlers
// and background workers only ever talk to this interface; production
// runs the mongo implementation and the in-memory one serves as the
// fixture fallback and test double.
type HelpmatchStore interface {
	UserStore
	RequestStore
	MatchStore
	MessageStore
	Pinger
	Closer
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// UserProfileUpdate carries the mutable profile fields; nil means leave
// the field untouched.
type UserProfileUpdate struct {
	Name     *string
	Bio      *string
	Tags     []string
	Timezone *string
}

type UserStore interface {
	CreateUser(user schema.User) error
	GetUser(id string) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	UpdateUserProfile(id string, update UserProfileUpdate, now time.Time) (*schema.User, error)

	// ListCandidates returns every user except the excluded one; the
	// requester must never be a candidate for their own request.
	ListCandidates(excludeID string) ([]schema.User, error)
}

type RequestStore interface {
	CreateRequest(request schema.HelpRequest) error
	GetRequest(id string) (*schema.HelpRequest, error)
	ListRequestsByRequester(requesterID string) ([]schema.HelpRequest, error)
}

type MatchStore interface {
	GetMatch(id string) (*schema.Match, error)
	ListMatchesByRequest(requestID string) ([]schema.Match, error)
	ListMatchesByHelper(helperID string, states []string) ([]schema.Match, error)

	// UpsertSuggested reconciles one freshly ranked suggestion against
	// whatever is stored under the same deterministic id and returns the
	// record that survived: the fresh one (original creation time
	// preserved), or the stored one verbatim when it has progressed past
	// suggested. Safe under concurrent regeneration.
	UpsertSuggested(match schema.Match) (*schema.Match, error)

	// TransitionMatch atomically moves a match from an expected state to
	// the next one. Exactly one of two racing callers succeeds; the loser
	// observes the changed state as an invalid-transition conflict.
	TransitionMatch(id, from, to string, payload *schema.ConnectionPayload, now time.Time) (*schema.Match, error)

	// TouchMatch bumps updatedAt, used when activity lands on a
	// connection.
	TouchMatch(id string, now time.Time) error
}

type MessageStore interface {
	CreateMessage(message schema.ConnectionMessage) error
	ListMessages(matchID string) ([]schema.ConnectionMessage, error)
}
