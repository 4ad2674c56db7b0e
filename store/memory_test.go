package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
)

var fixtureTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func suggestedMatch(id string) schema.Match {
	return schema.Match{
		ID:        id,
		RequestID: "req1",
		HelperID:  "h1",
		Score:     0.8,
		Reasons:   []string{"Shared tags: coding"},
		State:     schema.MatchSuggested,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
}

func TestMemoryUserRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	user := schema.User{ID: "u1", Email: "u1@campus.edu", Name: "One"}
	require.NoError(t, s.CreateUser(user))

	got, err := s.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@campus.edu", got.Email)

	byEmail, err := s.GetUserByEmail("u1@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = s.GetUser("missing")
	assert.Equal(t, ErrUserNotFound, err)

	err = s.CreateUser(schema.User{ID: "u2", Email: "u1@campus.edu"})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestMemoryUpdateUserProfile(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(schema.User{
		ID:    "u1",
		Email: "u1@campus.edu",
		Name:  "One",
		Tags:  []string{"coding"},
	}))

	name := "Renamed"
	updated, err := s.UpdateUserProfile("u1", UserProfileUpdate{
		Name: &name,
		Tags: []string{"design", "career"},
	}, fixtureTime)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, []string{"design", "career"}, updated.Tags)
	assert.Equal(t, "u1@campus.edu", updated.Email)
	assert.Equal(t, fixtureTime, updated.UpdatedAt)
}

func TestMemoryListCandidatesExcludes(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, s.CreateUser(schema.User{ID: id, Email: id + "@campus.edu"}))
	}

	candidates, err := s.ListCandidates("u2")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.NotEqual(t, "u2", c.ID)
	}
}

func TestMemoryUpsertSuggestedRefreshesKeepingCreatedAt(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)
	assert.Equal(t, fixtureTime, first.CreatedAt)

	fresh := suggestedMatch("req1__h1")
	fresh.Score = 0.9
	fresh.CreatedAt = fixtureTime.Add(time.Hour)
	fresh.UpdatedAt = fixtureTime.Add(time.Hour)

	second, err := s.UpsertSuggested(fresh)
	require.NoError(t, err)
	assert.Equal(t, 0.9, second.Score)
	assert.Equal(t, fixtureTime, second.CreatedAt)
	assert.Equal(t, fixtureTime.Add(time.Hour), second.UpdatedAt)
}

func TestMemoryUpsertSuggestedNeverRegressesProgressed(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)

	_, err = s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.NoError(t, err)

	fresh := suggestedMatch("req1__h1")
	fresh.Score = 0.1

	kept, err := s.UpsertSuggested(fresh)
	require.NoError(t, err)
	assert.Equal(t, schema.MatchRequested, kept.State)
	assert.Equal(t, 0.8, kept.Score)
}

func TestMemoryTransitionMatch(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)

	requested, err := s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.NoError(t, err)
	assert.Equal(t, schema.MatchRequested, requested.State)
	assert.Nil(t, requested.ConnectionPayload)

	accepted, err := s.TransitionMatch("req1__h1", schema.MatchRequested, schema.MatchAccepted,
		&schema.ConnectionPayload{Message: "hi", NextStep: "call"}, fixtureTime)
	require.NoError(t, err)
	assert.Equal(t, schema.MatchAccepted, accepted.State)
	require.NotNil(t, accepted.ConnectionPayload)
	assert.Equal(t, "hi", accepted.ConnectionPayload.Message)
}

func TestMemoryTransitionMatchConflict(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)

	_, err = s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.NoError(t, err)

	// the second identical call arrives after the first already moved the
	// state on
	_, err = s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.Error(t, err)
	assert.IsType(t, &matching.InvalidTransitionError{}, err)
	assert.EqualError(t, err, "invalid transition from requested")

	_, err = s.TransitionMatch("missing", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	assert.Equal(t, ErrMatchNotFound, err)
}

func TestMemoryTransitionMatchAcceptedWithoutPayload(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)

	_, err = s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.NoError(t, err)

	accepted, err := s.TransitionMatch("req1__h1", schema.MatchRequested, schema.MatchAccepted, nil, fixtureTime)
	require.NoError(t, err)
	require.NotNil(t, accepted.ConnectionPayload)
	assert.Equal(t, schema.ConnectionPayload{}, *accepted.ConnectionPayload)
}

func TestMemoryTransitionMatchConcurrentAccept(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpsertSuggested(suggestedMatch("req1__h1"))
	require.NoError(t, err)
	_, err = s.TransitionMatch("req1__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime)
	require.NoError(t, err)

	const racers = 8
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.TransitionMatch("req1__h1", schema.MatchRequested, schema.MatchAccepted, nil, fixtureTime)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.IsType(t, &matching.InvalidTransitionError{}, err)
		}
	}
	assert.Equal(t, 1, won)
}

func TestMemoryListMatchesByHelper(t *testing.T) {
	s := NewMemoryStore()

	for i, id := range []string{"req1__h1", "req2__h1", "req3__h1"} {
		m := suggestedMatch(id)
		m.RequestID = "req" + string(rune('1'+i))
		m.UpdatedAt = fixtureTime.Add(time.Duration(i) * time.Minute)
		_, err := s.UpsertSuggested(m)
		require.NoError(t, err)
	}
	_, err := s.TransitionMatch("req2__h1", schema.MatchSuggested, schema.MatchRequested, nil, fixtureTime.Add(time.Hour))
	require.NoError(t, err)

	inbox, err := s.ListMatchesByHelper("h1", []string{schema.MatchRequested, schema.MatchAccepted})
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "req2__h1", inbox[0].ID)

	all, err := s.ListMatchesByHelper("h1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "req2__h1", all[0].ID)
}

func TestMemoryMessagesRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	msgs := []schema.ConnectionMessage{
		{ID: "m2", MatchID: "req1__h1", SenderID: "h1", SenderRole: schema.RoleHelper, Text: "second", CreatedAt: fixtureTime.Add(time.Minute)},
		{ID: "m1", MatchID: "req1__h1", SenderID: "r1", SenderRole: schema.RoleRequester, Text: "first", CreatedAt: fixtureTime},
		{ID: "m3", MatchID: "req2__h2", SenderID: "r2", SenderRole: schema.RoleRequester, Text: "other", CreatedAt: fixtureTime},
	}
	for _, m := range msgs {
		require.NoError(t, s.CreateMessage(m))
	}

	got, err := s.ListMessages("req1__h1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
}

func TestMemoryRequestsByRequester(t *testing.T) {
	s := NewMemoryStore()

	for i, id := range []string{"req1", "req2"} {
		require.NoError(t, s.CreateRequest(schema.HelpRequest{
			ID:          id,
			RequesterID: "r1",
			Title:       id,
			CreatedAt:   fixtureTime.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.CreateRequest(schema.HelpRequest{ID: "req3", RequesterID: "r2"}))

	requests, err := s.ListRequestsByRequester("r1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req2", requests[0].ID)

	_, err = s.GetRequest("missing")
	assert.Equal(t, ErrRequestNotFound, err)
}
