package schema

// AllowedTags is the closed vocabulary a profile or request may use.
var AllowedTags = []string{
	"career",
	"cv",
	"interview",
	"coding",
	"frontend",
	"backend",
	"database",
	"design",
	"writing",
	"marketing",
	"finance",
	"legal",
	"health",
	"admin",
	"other",
}

var allowedTagSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(AllowedTags))
	for _, t := range AllowedTags {
		s[t] = struct{}{}
	}
	return s
}()

// IsAllowedTag reports whether t belongs to the closed vocabulary.
func IsAllowedTag(t string) bool {
	_, ok := allowedTagSet[t]
	return ok
}

// FilterAllowedTags drops tags outside the vocabulary and duplicates,
// preserving the original order.
func FilterAllowedTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if !IsAllowedTag(t) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
