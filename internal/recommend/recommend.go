// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend asks a generative-text API for books or authors similar
// to a search term. The API is reached through the Generator strategy so the
// step can be mocked or swapped.
package recommend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/pdiddy/book-finder/internal/logger"
	"github.com/pdiddy/book-finder/pkg/types"
)

// NoRecommendation is shown when the API returns no text.
const NoRecommendation = "No recommendation found."

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("recommendation API key not configured")

var promptTmpl = template.Must(template.New("recommend").Parse(
	`Recommend books or authors similar to: {{.Seed}}`))

// Generator sends one generation request to a text-generation API.
type Generator interface {
	Generate(ctx context.Context, req types.RecommendationRequest) (types.RecommendationResponse, error)
}

// Recommender builds prompts and extracts the first answer.
type Recommender struct {
	Backend         Generator
	Temperature     float32
	MaxOutputTokens int32
}

// New returns a Recommender using the generation settings from cfg.
func New(backend Generator, cfg types.RecommendConfig) *Recommender {
	return &Recommender{
		Backend:         backend,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
}

// Validate checks the generation settings.
func Validate(cfg types.RecommendConfig) error {
	if cfg.Temperature < 0 || cfg.Temperature > 1 {
		return fmt.Errorf("recommend.temperature %v out of range [0,1]", cfg.Temperature)
	}
	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("recommend.max_output_tokens must be positive, got %d", cfg.MaxOutputTokens)
	}
	if cfg.Model == "" {
		return fmt.Errorf("recommend.model is empty")
	}
	return nil
}

// Prompt renders the recommendation prompt for seed.
func Prompt(seed string) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, struct{ Seed string }{Seed: seed}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Recommend returns the first generated text for seed, or NoRecommendation
// when the response carries none.
func (r *Recommender) Recommend(ctx context.Context, seed string) (string, error) {
	if r.Backend == nil {
		return "", ErrNotConfigured
	}
	prompt, err := Prompt(seed)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	defer logger.Track(ctx, "recommendation")()

	resp, err := r.Backend.Generate(ctx, types.RecommendationRequest{
		Prompt:          prompt,
		Temperature:     r.Temperature,
		MaxOutputTokens: r.MaxOutputTokens,
	})
	if err != nil {
		return "", err
	}

	text, ok := resp.FirstText()
	if !ok {
		return NoRecommendation, nil
	}
	return text, nil
}

// Print writes the suggestion block for seed to w. Failures are logged and
// reported as "Error: ..." on w; the error is returned so callers can tell,
// but it is never fatal.
func (r *Recommender) Print(ctx context.Context, seed string, w io.Writer) error {
	text, err := r.Recommend(ctx, seed)
	if err != nil {
		logger.For(ctx).WithError(err).WithField("seed", seed).Error("recommendation failed")
		fmt.Fprintf(w, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(w, "Here are some suggestions based on %s\n\n", seed)
	fmt.Fprintln(w, text)
	return nil
}
