package matching

import (
	"strings"
)

// tagSynonyms broadens similarity matching by one level only: expansions
// of expansions are not followed.
var tagSynonyms = map[string][]string{
	"interview": {"cv", "writing"},
	"coding":    {"backend", "frontend"},
}

// NormalizeTag lower-cases and trims a raw tag string.
func NormalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// NormalizeTags returns the normalized set of tags.
func NormalizeTags(tags []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		out[NormalizeTag(t)] = struct{}{}
	}
	return out
}

// ExpandTags normalizes tags and unions in their synonym expansions.
// Unknown tags pass through normalized but unexpanded. Idempotent beyond
// re-running the fixed expansion.
func ExpandTags(tags []string) map[string]struct{} {
	out := NormalizeTags(tags)

	snapshot := make([]string, 0, len(out))
	for t := range out {
		snapshot = append(snapshot, t)
	}

	for _, t := range snapshot {
		for _, extra := range tagSynonyms[t] {
			out[NormalizeTag(extra)] = struct{}{}
		}
	}
	return out
}
