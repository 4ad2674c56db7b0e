package matching

import (
	"time"

	"github.com/campusconnect/helpmatch-api/schema"
)

// matchIDSeparator joins the two ids into the deterministic match identity.
const matchIDSeparator = "__"

// MatchID derives the match identity from its (request, helper) pair.
// Being a pure function of the pair, it guarantees at most one match per
// pair without a coordinator or lookup.
func MatchID(requestID, helperID string) string {
	return requestID + matchIDSeparator + helperID
}

// NewMatch builds a fresh match record in the suggested state. The caller
// supplies now so that regeneration can stamp a whole batch consistently;
// the store preserves the original creation time on upsert.
func NewMatch(request schema.HelpRequest, r Ranked, now time.Time) schema.Match {
	return schema.Match{
		ID:          MatchID(request.ID, r.Helper.ID),
		RequestID:   request.ID,
		RequesterID: request.RequesterID,
		HelperID:    r.Helper.ID,
		Score:       r.Score,
		Reasons:     r.Reasons,
		State:       schema.MatchSuggested,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
