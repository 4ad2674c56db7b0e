package store

import (
	"sort"
	"sync"
	"time"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
)

// memoryStore is the fixture implementation of the storage port. It keeps
// every collection in process behind one mutex, which also serializes the
// per-match read-check-write sections the mongo implementation gets from
// conditional updates. The server falls back to it when no mongo
// connection is configured; tests use it directly.
type memoryStore struct {
	sync.RWMutex

	users    map[string]schema.User
	requests map[string]schema.HelpRequest
	matches  map[string]schema.Match
	messages []schema.ConnectionMessage
}

// NewMemoryStore - return the in-memory storage port
func NewMemoryStore() HelpmatchStore {
	return &memoryStore{
		users:    map[string]schema.User{},
		requests: map[string]schema.HelpRequest{},
		matches:  map[string]schema.Match{},
		messages: []schema.ConnectionMessage{},
	}
}

func (s *memoryStore) Ping() error { return nil }
func (s *memoryStore) Close()      {}

func (s *memoryStore) CreateUser(user schema.User) error {
	s.Lock()
	defer s.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *memoryStore) GetUser(id string) (*schema.User, error) {
	s.RLock()
	defer s.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *memoryStore) GetUserByEmail(email string) (*schema.User, error) {
	s.RLock()
	defer s.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *memoryStore) UpdateUserProfile(id string, update UserProfileUpdate, now time.Time) (*schema.User, error) {
	s.Lock()
	defer s.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Tags != nil {
		user.Tags = update.Tags
	}
	if update.Timezone != nil {
		user.Timezone = *update.Timezone
	}
	user.UpdatedAt = now

	s.users[id] = user
	return &user, nil
}

func (s *memoryStore) ListCandidates(excludeID string) ([]schema.User, error) {
	s.RLock()
	defer s.RUnlock()

	users := make([]schema.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID == excludeID {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *memoryStore) CreateRequest(request schema.HelpRequest) error {
	s.Lock()
	defer s.Unlock()

	s.requests[request.ID] = request
	return nil
}

func (s *memoryStore) GetRequest(id string) (*schema.HelpRequest, error) {
	s.RLock()
	defer s.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return &request, nil
}

func (s *memoryStore) ListRequestsByRequester(requesterID string) ([]schema.HelpRequest, error) {
	s.RLock()
	defer s.RUnlock()

	requests := make([]schema.HelpRequest, 0)
	for _, r := range s.requests {
		if r.RequesterID == requesterID {
			requests = append(requests, r)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (s *memoryStore) GetMatch(id string) (*schema.Match, error) {
	s.RLock()
	defer s.RUnlock()

	match, ok := s.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return &match, nil
}

func (s *memoryStore) ListMatchesByRequest(requestID string) ([]schema.Match, error) {
	s.RLock()
	defer s.RUnlock()

	matches := make([]schema.Match, 0)
	for _, m := range s.matches {
		if m.RequestID == requestID {
			matches = append(matches, m)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].HelperID < matches[j].HelperID
	})
	return matches, nil
}

func (s *memoryStore) ListMatchesByHelper(helperID string, states []string) ([]schema.Match, error) {
	s.RLock()
	defer s.RUnlock()

	wanted := make(map[string]struct{}, len(states))
	for _, st := range states {
		wanted[st] = struct{}{}
	}

	matches := make([]schema.Match, 0)
	for _, m := range s.matches {
		if m.HelperID != helperID {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[m.State]; !ok {
				continue
			}
		}
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
	})
	return matches, nil
}

func (s *memoryStore) UpsertSuggested(match schema.Match) (*schema.Match, error) {
	s.Lock()
	defer s.Unlock()

	existing, ok := s.matches[match.ID]
	if ok && existing.Progressed() {
		// regeneration never erases an in-flight response or an
		// accepted connection
		return &existing, nil
	}
	if ok {
		match.CreatedAt = existing.CreatedAt
	}

	s.matches[match.ID] = match
	return &match, nil
}

func (s *memoryStore) TransitionMatch(id, from, to string, payload *schema.ConnectionPayload, now time.Time) (*schema.Match, error) {
	s.Lock()
	defer s.Unlock()

	match, ok := s.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	if match.State != from {
		return nil, &matching.InvalidTransitionError{From: match.State, To: to}
	}

	match.State = to
	match.UpdatedAt = now
	if to == schema.MatchAccepted {
		if payload == nil {
			payload = &schema.ConnectionPayload{}
		}
		match.ConnectionPayload = payload
	}

	s.matches[id] = match
	return &match, nil
}

func (s *memoryStore) TouchMatch(id string, now time.Time) error {
	s.Lock()
	defer s.Unlock()

	match, ok := s.matches[id]
	if !ok {
		return ErrMatchNotFound
	}
	match.UpdatedAt = now
	s.matches[id] = match
	return nil
}

func (s *memoryStore) CreateMessage(message schema.ConnectionMessage) error {
	s.Lock()
	defer s.Unlock()

	s.messages = append(s.messages, message)
	return nil
}

func (s *memoryStore) ListMessages(matchID string) ([]schema.ConnectionMessage, error) {
	s.RLock()
	defer s.RUnlock()

	messages := make([]schema.ConnectionMessage, 0)
	for _, m := range s.messages {
		if m.MatchID == matchID {
			messages = append(messages, m)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}
