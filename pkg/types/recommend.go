// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RecommendationRequest is a single-turn generation request.
type RecommendationRequest struct {
	Prompt          string  `json:"prompt" yaml:"prompt"`
	Temperature     float32 `json:"temperature" yaml:"temperature"`
	MaxOutputTokens int32   `json:"max_output_tokens" yaml:"max_output_tokens"`
}

// RecommendationResponse holds the generated candidates in API order.
type RecommendationResponse struct {
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
}

// Candidate is one generated answer split into text parts.
type Candidate struct {
	Parts []string `json:"parts" yaml:"parts"`
}

// FirstText returns the first non-empty text part of the first candidate
// that has one, and false when there is none.
func (r RecommendationResponse) FirstText() (string, bool) {
	for _, c := range r.Candidates {
		for _, p := range c.Parts {
			if p != "" {
				return p, true
			}
		}
	}
	return "", false
}
