package tagging

import (
	"context"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "tagging")

// Fallback tries each suggester in order and settles for the first usable
// result. With the heuristic last it never fails: a broken or
// misconfigured model is a logged degradation, not an error the caller
// sees.
type Fallback struct {
	chain []Suggester
}

// NewFallback - new suggestion chain; suggesters are tried left to right
func NewFallback(chain ...Suggester) *Fallback {
	return &Fallback{chain: chain}
}

func (f *Fallback) Suggest(ctx context.Context, text string, max int) (*Result, error) {
	var last *Result
	for _, s := range f.chain {
		result, err := s.Suggest(ctx, text, max)
		if err != nil {
			log.WithError(err).Warn("suggester failed, falling back")
			continue
		}
		last = result
		if len(result.Tags) > 0 {
			return result, nil
		}
	}

	if last != nil {
		return last, nil
	}
	return &Result{Tags: []string{}, Source: SourceHeuristic}, nil
}
