package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/helpmatch-api/schema"
)

func TestClampTopN(t *testing.T) {
	cases := []struct {
		in       int
		expected int
	}{
		{0, DefaultTopN},
		{-3, DefaultTopN},
		{1, 1},
		{7, 7},
		{20, 20},
		{25, MaxTopN},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, ClampTopN(c.in))
	}
}

func TestRankTopNOrdersByScore(t *testing.T) {
	request := schema.HelpRequest{
		ID:          "req1",
		RequesterID: "r1",
		Tags:        []string{"coding"},
		Urgency:     schema.UrgencyHigh,
		Format:      schema.FormatChat,
	}
	requester := schema.User{ID: "r1"}
	candidates := []schema.User{
		{ID: "h1", Tags: []string{"design"}},
		{ID: "h2", Tags: []string{"coding", "backend", "frontend"}},
		{ID: "h3", Tags: []string{"backend"}},
	}

	ranked := RankTopN(request, requester, candidates, 5)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "h2", ranked[0].Helper.ID)
	for i := 1; i < len(ranked); i++ {
		assert.True(t, ranked[i-1].Score >= ranked[i].Score)
	}
}

func TestRankTopNTieBreaksByHelperID(t *testing.T) {
	request := schema.HelpRequest{
		ID:          "req1",
		RequesterID: "r1",
		Tags:        []string{"career"},
		Urgency:     schema.UrgencyLow,
		Format:      schema.FormatAsync,
	}
	requester := schema.User{ID: "r1"}

	// identical tag sets give identical scores; u1 must sort before u2
	// regardless of input order
	forward := []schema.User{
		{ID: "u1", Tags: []string{"design"}},
		{ID: "u2", Tags: []string{"design"}},
	}
	reversed := []schema.User{forward[1], forward[0]}

	for _, candidates := range [][]schema.User{forward, reversed} {
		ranked := RankTopN(request, requester, candidates, 5)
		assert.Len(t, ranked, 2)
		assert.Equal(t, ranked[0].Score, ranked[1].Score)
		assert.Equal(t, "u1", ranked[0].Helper.ID)
		assert.Equal(t, "u2", ranked[1].Helper.ID)
	}
}

func TestRankTopNExcludesRequester(t *testing.T) {
	request := schema.HelpRequest{
		ID:          "req1",
		RequesterID: "r1",
		Tags:        []string{"coding"},
		Urgency:     schema.UrgencyMedium,
		Format:      schema.FormatChat,
	}
	requester := schema.User{ID: "r1", Tags: []string{"coding"}}
	candidates := []schema.User{
		{ID: "r1", Tags: []string{"coding"}},
		{ID: "h1", Tags: []string{"coding"}},
	}

	ranked := RankTopN(request, requester, candidates, 5)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "h1", ranked[0].Helper.ID)
}

func TestRankTopNTruncates(t *testing.T) {
	request := schema.HelpRequest{
		ID:          "req1",
		RequesterID: "r1",
		Urgency:     schema.UrgencyLow,
		Format:      schema.FormatChat,
	}
	candidates := make([]schema.User, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		candidates = append(candidates, schema.User{ID: id})
	}

	ranked := RankTopN(request, schema.User{ID: "r1"}, candidates, 3)
	assert.Len(t, ranked, 3)
}

func TestMatchIDDeterministic(t *testing.T) {
	assert.Equal(t, "req1__h1", MatchID("req1", "h1"))
	assert.Equal(t, MatchID("req1", "h1"), MatchID("req1", "h1"))
	assert.NotEqual(t, MatchID("req1", "h1"), MatchID("req1", "h2"))
}
