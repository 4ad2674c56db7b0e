package matching

import (
	"sort"

	"github.com/campusconnect/helpmatch-api/schema"
)

const (
	DefaultTopN = 5
	MinTopN     = 1
	MaxTopN     = 20
)

// Ranked is one entry of a ranked shortlist.
type Ranked struct {
	Helper  schema.User
	Score   float64
	Reasons []string
}

// ClampTopN forces a caller-supplied shortlist size into [MinTopN, MaxTopN],
// substituting the default for non-positive input.
func ClampTopN(n int) int {
	if n <= 0 {
		n = DefaultTopN
	}
	if n < MinTopN {
		return MinTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

// RankTopN scores every candidate against the request and returns the best
// n, sorted descending by score with ascending helper id breaking ties so
// equal scores always come back in the same order. The requester is never
// a candidate for their own request. Pure: no I/O, no side effects.
func RankTopN(request schema.HelpRequest, requester schema.User, candidates []schema.User, n int) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, helper := range candidates {
		if helper.ID == requester.ID {
			continue
		}
		ranked = append(ranked, Ranked{
			Helper:  helper,
			Score:   Score(request, requester, helper),
			Reasons: Reasons(request, helper),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Helper.ID < ranked[j].Helper.ID
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
