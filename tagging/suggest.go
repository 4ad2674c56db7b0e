// Package tagging suggests vocabulary tags for free-text help requests.
// Suggestion quality is best-effort enrichment: the matching core never
// depends on which implementation produced the tags.
package tagging

import (
	"context"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
)

const (
	SourceAI        = "ai"
	SourceHeuristic = "heuristic"
)

const DefaultMaxTags = 3

// Result is a suggestion outcome along with which implementation
// produced it.
type Result struct {
	Tags   []string `json:"tags"`
	Source string   `json:"source"`
}

// Suggester proposes tags from the closed vocabulary for a piece of
// text.
type Suggester interface {
	Suggest(ctx context.Context, text string, max int) (*Result, error)
}

// normalizeAllowed lower-cases candidates, drops anything outside the
// vocabulary, deduplicates preserving order, and caps the list at max.
func normalizeAllowed(candidates []string, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{}, len(candidates))
	for _, raw := range candidates {
		t := matching.NormalizeTag(raw)
		if !schema.IsAllowedTag(t) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}
