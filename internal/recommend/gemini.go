// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/pdiddy/book-finder/pkg/types"
)

// GeminiBackend calls the Gemini generateContent endpoint through the genai
// SDK. The SDK client is created on first use so a missing key only fails the
// recommendation step.
type GeminiBackend struct {
	APIKey string
	Model  string

	// BaseURL overrides the SDK endpoint. Tests point it at httptest.
	BaseURL string

	// HTTPClient carries the request timeout. Nil uses the SDK default.
	HTTPClient *http.Client

	client *genai.Client
}

// NewGeminiBackend returns a backend configured from cfg.
func NewGeminiBackend(cfg types.RecommendConfig, httpClient *http.Client) *GeminiBackend {
	return &GeminiBackend{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
	}
}

func (g *GeminiBackend) sdk(ctx context.Context) (*genai.Client, error) {
	if g.client != nil {
		return g.client, nil
	}
	if g.APIKey == "" {
		return nil, ErrNotConfigured
	}

	cc := &genai.ClientConfig{
		APIKey:     g.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.HTTPClient,
	}
	if g.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

// Generate sends req as a single user turn.
func (g *GeminiBackend) Generate(ctx context.Context, req types.RecommendationRequest) (types.RecommendationResponse, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return types.RecommendationResponse{}, err
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.Prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, contents, config)
	if err != nil {
		return types.RecommendationResponse{}, fmt.Errorf("calling Gemini API: %w", err)
	}
	return fromGenai(resp), nil
}

// fromGenai keeps the text parts of each candidate in order.
func fromGenai(resp *genai.GenerateContentResponse) types.RecommendationResponse {
	var out types.RecommendationResponse
	if resp == nil {
		return out
	}
	for _, c := range resp.Candidates {
		var cand types.Candidate
		if c != nil && c.Content != nil {
			for _, p := range c.Content.Parts {
				if p != nil {
					cand.Parts = append(cand.Parts, p.Text)
				}
			}
		}
		out.Candidates = append(out.Candidates, cand)
	}
	return out
}
