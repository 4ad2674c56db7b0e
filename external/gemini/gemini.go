package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

const (
	defaultURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel = "gemini-1.5-flash"
)

var (
	ErrEmptyAPIKey  = fmt.Errorf("empty api key")
	ErrNoCandidates = fmt.Errorf("no candidates in response")
)

// Gemini - interface to generate text with the Gemini API
type Gemini interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type gemini struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a single-turn prompt and returns the first
// candidate's text.
func (g *gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	// https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent?key=xxxx
	query := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.url, g.model, g.apiKey)
	req, err := http.NewRequest(http.MethodPost, query, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var r generateResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return "", err
	}

	if r.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", r.Error.Code, r.Error.Message)
	}
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	return r.Candidates[0].Content.Parts[0].Text, nil
}

// New - new Gemini interface
func New(apiKey, model, url string, httpClient *http.Client) Gemini {
	m := defaultModel
	if model != "" {
		m = model
	}
	u := defaultURL
	if url != "" {
		u = url
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &gemini{
		apiKey:     apiKey,
		model:      m,
		url:        u,
		httpClient: httpClient,
	}
}
