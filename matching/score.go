package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/campusconnect/helpmatch-api/schema"
)

// scoring weights, fixed by product
const (
	tagWeight     = 0.70
	formatWeight  = 0.20
	urgencyWeight = 0.10
)

const maxReasons = 4

// Jaccard computes |A∩B| / |A∪B| for two tag sets, 0 when both are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}

	union := len(b)
	for t := range a {
		if _, ok := b[t]; !ok {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// UrgencyScore is a fixed deterministic mapping; it is not derived from
// helper data.
func UrgencyScore(urgency string) float64 {
	switch urgency {
	case schema.UrgencyHigh:
		return 1.0
	case schema.UrgencyMedium:
		return 0.6
	default:
		return 0.3
	}
}

// FormatScore returns a neutral constant until helpers carry declared
// format preferences. Keeping it neutral stops the format weight from
// zeroing every candidate out.
func FormatScore(format string, helper schema.User) float64 {
	return 0.5
}

// Score computes the weighted fit of one helper for one request, clamped
// to [0,1] and rounded to 4 decimal places. Pure: re-scoring the same
// triple always yields the same value.
func Score(request schema.HelpRequest, requester, helper schema.User) float64 {
	reqTags := ExpandTags(request.Tags)
	helperTags := ExpandTags(helper.Tags)

	tagSim := Jaccard(reqTags, helperTags)
	fmtScore := FormatScore(request.Format, helper)
	urg := UrgencyScore(request.Urgency)

	score := tagSim*tagWeight + fmtScore*formatWeight + urg*urgencyWeight

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*10000) / 10000
}

// expandOrdered returns the expanded tag list in deterministic order:
// normalized input tags first (input order, deduplicated), then their
// synonym expansions in table order.
func expandOrdered(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))

	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, t := range tags {
		add(NormalizeTag(t))
	}
	for _, t := range out[:len(out):len(out)] {
		for _, extra := range tagSynonyms[t] {
			add(NormalizeTag(extra))
		}
	}
	return out
}

// Reasons explains a score in at most 4 human-readable strings: literal
// shared tags win over expansion-only overlaps, then the request format,
// then an urgency note when the request is pressing.
func Reasons(request schema.HelpRequest, helper schema.User) []string {
	helperOriginal := NormalizeTags(helper.Tags)
	helperExpanded := ExpandTags(helper.Tags)

	sharedOriginal := make([]string, 0, maxReasons)
	seen := make(map[string]struct{})
	for _, raw := range request.Tags {
		t := NormalizeTag(raw)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := helperOriginal[t]; ok && len(sharedOriginal) < maxReasons {
			sharedOriginal = append(sharedOriginal, t)
		}
	}

	reasons := make([]string, 0, maxReasons)

	if len(sharedOriginal) > 0 {
		reasons = append(reasons, "Shared tags: "+strings.Join(sharedOriginal, ", "))
	} else {
		sharedExpanded := make([]string, 0, 2)
		for _, t := range expandOrdered(request.Tags) {
			if len(sharedExpanded) == 2 {
				break
			}
			if _, ok := helperExpanded[t]; ok {
				sharedExpanded = append(sharedExpanded, t)
			}
		}
		if len(sharedExpanded) > 0 {
			reasons = append(reasons, "Related tags: "+strings.Join(sharedExpanded, ", "))
		}
	}

	reasons = append(reasons, fmt.Sprintf("Request format: %s", request.Format))

	switch request.Urgency {
	case schema.UrgencyHigh:
		reasons = append(reasons, "Urgent request")
	case schema.UrgencyMedium:
		reasons = append(reasons, "Time-sensitive request")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Profile appears generally relevant")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}
