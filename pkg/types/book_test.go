// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorRefAuthorID(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"/authors/OL12345A", "OL12345A"},
		{"/authors/OL1A", "OL1A"},
		{"authors/nested/OL9B", "OL9B"},
		{"OL7C", "OL7C"},
		{"/authors/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthorRef{Key: tt.key}.AuthorID())
		})
	}
}

func TestAuthorDetailDisplayName(t *testing.T) {
	personal, name, empty := "Frank Herbert", "Franklin Patrick Herbert", ""

	assert.Equal(t, "Frank Herbert", AuthorDetail{PersonalName: &personal, Name: &name}.DisplayName())
	assert.Equal(t, name, AuthorDetail{Name: &name}.DisplayName())
	assert.Equal(t, name, AuthorDetail{PersonalName: &empty, Name: &name}.DisplayName())
	assert.Equal(t, "", AuthorDetail{}.DisplayName())
}

func TestRecommendationResponseFirstText(t *testing.T) {
	tests := []struct {
		name   string
		resp   RecommendationResponse
		want   string
		wantOK bool
	}{
		{"no candidates", RecommendationResponse{}, "", false},
		{"empty parts", RecommendationResponse{Candidates: []Candidate{{}}}, "", false},
		{
			"first part of first candidate",
			RecommendationResponse{Candidates: []Candidate{{Parts: []string{"Try Homer.", "Also Virgil."}}}},
			"Try Homer.", true,
		},
		{
			"skips empty candidate",
			RecommendationResponse{Candidates: []Candidate{{Parts: []string{""}}, {Parts: []string{"Read Borges."}}}},
			"Read Borges.", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.resp.FirstText()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.Catalog.Limit)
	assert.Equal(t, "https://openlibrary.org", cfg.Catalog.BaseURL)
	assert.Equal(t, RoundHalfUp, cfg.Format.RatingRounding)
	assert.InDelta(t, 0.8, cfg.Recommend.Temperature, 1e-6)
	assert.Equal(t, int32(300), cfg.Recommend.MaxOutputTokens)
	assert.True(t, cfg.Recommend.Enabled)
}
