package matching

import (
	"sync"
	"time"

	"github.com/campusconnect/helpmatch-api/schema"
)

// GenerationStore is the slice of the storage port regeneration needs.
type GenerationStore interface {
	GetRequest(id string) (*schema.HelpRequest, error)
	GetUser(id string) (*schema.User, error)
	ListCandidates(excludeID string) ([]schema.User, error)
	UpsertSuggested(match schema.Match) (*schema.Match, error)
	ListMatchesByRequest(requestID string) ([]schema.Match, error)
}

// Generate recomputes the ranked shortlist for a request and reconciles
// it against whatever is already stored. Progressed matches are kept
// verbatim; everything else is upserted fresh with the original creation
// time preserved. The reconciled set comes back in fresh rank order, not
// storage order, so callers always see best-match-first even for
// pass-through preserved records.
//
// The per-candidate reconciliations are independent and fan out; each
// one's read-check-write is atomic inside the store, so the whole
// operation is safe to run repeatedly and concurrently for the same
// request.
func Generate(store GenerationStore, requestID string, topN int, now time.Time) ([]schema.Match, error) {
	request, err := store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	requester, err := store.GetUser(request.RequesterID)
	if err != nil {
		return nil, err
	}

	candidates, err := store.ListCandidates(requester.ID)
	if err != nil {
		return nil, err
	}

	ranked := RankTopN(*request, *requester, candidates, ClampTopN(topN))

	// rank order is fixed before any write; the indexed fan-out below is
	// the merge step mapping that order through the resolved records
	resolved := make([]*schema.Match, len(ranked))
	errs := make([]error, len(ranked))

	var wg sync.WaitGroup
	for i, r := range ranked {
		wg.Add(1)
		go func(i int, r Ranked) {
			defer wg.Done()
			fresh := NewMatch(*request, r, now)
			resolved[i], errs[i] = store.UpsertSuggested(fresh)
		}(i, r)
	}
	wg.Wait()

	matches := make([]schema.Match, 0, len(ranked))
	seen := make(map[string]struct{}, len(ranked))
	for i := range ranked {
		if errs[i] != nil {
			return nil, errs[i]
		}
		matches = append(matches, *resolved[i])
		seen[resolved[i].ID] = struct{}{}
	}

	// A helper who accepted earlier may no longer make the fresh shortlist,
	// for example after editing their profile tags. Their match is still a
	// live connection and must survive regeneration, so progressed records
	// outside the shortlist are carried over after the ranked ones.
	stored, err := store.ListMatchesByRequest(requestID)
	if err != nil {
		return nil, err
	}
	for _, m := range stored {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		if m.Progressed() {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
