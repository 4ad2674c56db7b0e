package tagging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campusconnect/helpmatch-api/external/gemini"
	"github.com/campusconnect/helpmatch-api/schema"
)

var (
	ErrTextTooShort   = fmt.Errorf("text too short for suggestion")
	ErrNoUsableResult = fmt.Errorf("model returned no usable tags")
)

const promptTemplate = `You assign topic tags for a student support matching app.
Rules:
- Choose tags ONLY from AllowedTags.
- Return 3 to 6 tags.
- Output MUST be valid JSON only (no extra text).
JSON schema:
{"suggestedTags": string[], "confidence": number}
StudentText:
%q
AllowedTags:
%s`

// AI asks a Gemini model for tags and keeps only what falls inside the
// closed vocabulary.
type AI struct {
	client gemini.Gemini
}

// NewAI - new model-backed suggester
func NewAI(client gemini.Gemini) *AI {
	return &AI{client: client}
}

type modelOutput struct {
	SuggestedTags []string `json:"suggestedTags"`
	Confidence    float64  `json:"confidence"`
}

// stripFences removes the markdown code fences models wrap JSON in.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func (a *AI) Suggest(ctx context.Context, text string, max int) (*Result, error) {
	if max <= 0 {
		max = DefaultMaxTags
	}
	if len(strings.TrimSpace(text)) < 3 {
		return nil, ErrTextTooShort
	}

	allowed, err := json.Marshal(schema.AllowedTags)
	if err != nil {
		return nil, err
	}

	raw, err := a.client.GenerateText(ctx, fmt.Sprintf(promptTemplate, text, allowed))
	if err != nil {
		return nil, err
	}

	var out modelOutput
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return nil, fmt.Errorf("unparseable model output: %w", err)
	}

	tags := normalizeAllowed(out.SuggestedTags, max)
	if len(tags) == 0 {
		return nil, ErrNoUsableResult
	}

	return &Result{Tags: tags, Source: SourceAI}, nil
}
