package tagging

import (
	"context"
	"regexp"
	"strings"

	"github.com/campusconnect/helpmatch-api/schema"
)

type keywordRule struct {
	test *regexp.Regexp
	tags []string
}

var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)\b(cv|resume)\b`), []string{"cv", "career"}},
	{regexp.MustCompile(`(?i)\binterview\b`), []string{"interview", "career"}},
	{regexp.MustCompile(`(?i)\b(frontend|react|ui|ux|figma)\b`), []string{"frontend", "design"}},
	{regexp.MustCompile(`(?i)\b(backend|api|server)\b`), []string{"backend", "coding"}},
	{regexp.MustCompile(`(?i)\b(database|sql|postgres|mongodb)\b`), []string{"database", "backend"}},
	{regexp.MustCompile(`(?i)\b(design|brand|visual)\b`), []string{"design"}},
	{regexp.MustCompile(`(?i)\b(writing|copy|docs)\b`), []string{"writing"}},
	{regexp.MustCompile(`(?i)\b(marketing|pitch|growth)\b`), []string{"marketing"}},
	{regexp.MustCompile(`(?i)\b(finance|budget|pricing)\b`), []string{"finance"}},
	{regexp.MustCompile(`(?i)\b(legal|terms|privacy)\b`), []string{"legal"}},
	{regexp.MustCompile(`(?i)\b(health|wellbeing)\b`), []string{"health"}},
	{regexp.MustCompile(`(?i)\b(admin|ops|operations)\b`), []string{"admin"}},
	{regexp.MustCompile(`(?i)\b(code|bug|debug)\b`), []string{"coding"}},
}

var fallbackTags = []string{"career", "coding", "design"}

// Heuristic is the deterministic local suggester. It always succeeds, so
// it terminates every fallback chain.
type Heuristic struct{}

// NewHeuristic - new deterministic keyword suggester
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Suggest scans the text against the keyword rules and pads with general
// tags so at least two come back for non-empty input.
func (h *Heuristic) Suggest(ctx context.Context, text string, max int) (*Result, error) {
	if max <= 0 {
		max = DefaultMaxTags
	}

	result := &Result{Tags: []string{}, Source: SourceHeuristic}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	selected := make([]string, 0, max)
	seen := make(map[string]struct{})
	add := func(t string) {
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		selected = append(selected, t)
	}

	for _, rule := range keywordRules {
		if rule.test.MatchString(text) {
			for _, t := range rule.tags {
				add(t)
			}
		}
	}

	for _, t := range fallbackTags {
		if len(selected) >= 2 {
			break
		}
		add(t)
	}
	for _, t := range schema.AllowedTags {
		if len(selected) >= 2 {
			break
		}
		add(t)
	}

	if len(selected) > max {
		selected = selected[:max]
	}
	result.Tags = selected
	return result, nil
}
