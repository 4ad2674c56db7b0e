package matching_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
	"github.com/campusconnect/helpmatch-api/store"
)

func seedGenerationFixture(t *testing.T) store.HelpmatchStore {
	s := store.NewMemoryStore()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	users := []schema.User{
		{ID: "r1", Email: "requester@campus.edu", Name: "Requester", Tags: []string{"coding"}},
		{ID: "h1", Email: "h1@campus.edu", Name: "Helper One", Tags: []string{"coding", "backend"}},
		{ID: "h2", Email: "h2@campus.edu", Name: "Helper Two", Tags: []string{"frontend"}},
		{ID: "h3", Email: "h3@campus.edu", Name: "Helper Three", Tags: []string{"design"}},
	}
	for _, u := range users {
		u.CreatedAt = now
		u.UpdatedAt = now
		require.NoError(t, s.CreateUser(u))
	}

	require.NoError(t, s.CreateRequest(schema.HelpRequest{
		ID:          "req1",
		RequesterID: "r1",
		Title:       "Debug my API",
		Urgency:     schema.UrgencyHigh,
		Format:      schema.FormatChat,
		Tags:        []string{"coding", "backend"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
	return s
}

func TestGenerateRanksAndPersists(t *testing.T) {
	s := seedGenerationFixture(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	matches, err := matching.Generate(s, "req1", 5, now)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// best tag overlap first, and the requester is never matched to
	// their own request
	assert.Equal(t, "h1", matches[0].HelperID)
	for _, m := range matches {
		assert.NotEqual(t, "r1", m.HelperID)
		assert.Equal(t, schema.MatchSuggested, m.State)
		assert.Equal(t, matching.MatchID("req1", m.HelperID), m.ID)
		assert.NotEmpty(t, m.Reasons)
	}
	for i := 1; i < len(matches); i++ {
		assert.True(t, matches[i-1].Score >= matches[i].Score)
	}

	stored, err := s.ListMatchesByRequest("req1")
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestGenerateIdempotentKeepsCreatedAt(t *testing.T) {
	s := seedGenerationFixture(t)
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	before, err := matching.Generate(s, "req1", 5, first)
	require.NoError(t, err)

	after, err := matching.Generate(s, "req1", 5, second)
	require.NoError(t, err)

	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Score, after[i].Score)
		assert.Equal(t, first, after[i].CreatedAt)
		assert.Equal(t, second, after[i].UpdatedAt)
	}
}

func TestGeneratePreservesProgressedMatch(t *testing.T) {
	s := seedGenerationFixture(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := matching.Generate(s, "req1", 5, now)
	require.NoError(t, err)

	matchID := matching.MatchID("req1", "h1")
	_, err = s.TransitionMatch(matchID, schema.MatchSuggested, schema.MatchRequested, nil, now)
	require.NoError(t, err)
	accepted, err := s.TransitionMatch(matchID, schema.MatchRequested, schema.MatchAccepted,
		&schema.ConnectionPayload{Message: "hi"}, now)
	require.NoError(t, err)
	require.Equal(t, schema.MatchAccepted, accepted.State)

	regenerated, err := matching.Generate(s, "req1", 5, now.Add(time.Hour))
	require.NoError(t, err)

	var found *schema.Match
	for i := range regenerated {
		if regenerated[i].ID == matchID {
			found = &regenerated[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, schema.MatchAccepted, found.State)
	require.NotNil(t, found.ConnectionPayload)
	assert.Equal(t, "hi", found.ConnectionPayload.Message)
	assert.Equal(t, accepted.Score, found.Score)
}

// An accepted connection survives regeneration even when the helper no
// longer makes the fresh shortlist at all.
func TestGenerateCarriesProgressedOutsideShortlist(t *testing.T) {
	s := seedGenerationFixture(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := matching.Generate(s, "req1", 5, now)
	require.NoError(t, err)

	matchID := matching.MatchID("req1", "h3")
	_, err = s.TransitionMatch(matchID, schema.MatchSuggested, schema.MatchRequested, nil, now)
	require.NoError(t, err)
	_, err = s.TransitionMatch(matchID, schema.MatchRequested, schema.MatchAccepted, nil, now)
	require.NoError(t, err)

	regenerated, err := matching.Generate(s, "req1", 1, now.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, regenerated, 2)
	assert.Equal(t, "h1", regenerated[0].HelperID)
	assert.Equal(t, schema.MatchSuggested, regenerated[0].State)
	assert.Equal(t, "h3", regenerated[1].HelperID)
	assert.Equal(t, schema.MatchAccepted, regenerated[1].State)
}

func TestGenerateUnknownRequest(t *testing.T) {
	s := seedGenerationFixture(t)

	_, err := matching.Generate(s, "missing", 5, time.Now())
	assert.Equal(t, store.ErrRequestNotFound, err)
}
