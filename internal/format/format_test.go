// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/book-finder/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestAuthors(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"nil", nil, "Author unknown."},
		{"empty", []string{}, "Author unknown."},
		{"single", []string{"Homer"}, "Homer"},
		{"two in order", []string{"Homer", "Emily Wilson"}, "Homer, Emily Wilson"},
		{"three in order", []string{"C", "A", "B"}, "C, A, B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authors(tt.names))
		})
	}
}

// Ratings are reduced to two decimals; half-up is the default policy and
// floor is the alternative.
func TestRating(t *testing.T) {
	tests := []struct {
		name     string
		rounding types.RatingRounding
		in       *float64
		want     string
		wantOK   bool
	}{
		{"absent", types.RoundHalfUp, nil, "", false},
		{"zero sentinel", types.RoundHalfUp, ptr(0.0), "", false},
		{"rounds to zero", types.RoundHalfUp, ptr(0.004), "", false},
		{"smallest shown", types.RoundHalfUp, ptr(0.006), "0.01", true},
		{"round up", types.RoundHalfUp, ptr(4.567), "4.57", true},
		{"round down", types.RoundHalfUp, ptr(3.9412), "3.94", true},
		{"long fraction", types.RoundHalfUp, ptr(3.9473684), "3.95", true},
		{"whole", types.RoundHalfUp, ptr(4.0), "4.00", true},
		{"zero value policy is half-up", "", ptr(4.567), "4.57", true},
		{"floor", types.RoundFloor, ptr(4.567), "4.56", true},
		{"floor long fraction", types.RoundFloor, ptr(3.9473684), "3.94", true},
		{"floor whole", types.RoundFloor, ptr(5.0), "5.00", true},
		{"floor to zero", types.RoundFloor, ptr(0.009), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Formatter{Rounding: tt.rounding}.Rating(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSummary(t *testing.T) {
	f := Formatter{}
	tests := []struct {
		name string
		book types.BookSummary
		want string
	}{
		{
			name: "all fields",
			book: types.BookSummary{
				Title:            ptr("The Odyssey"),
				AuthorNames:      []string{"Homer", "Emily Wilson"},
				FirstPublishYear: ptr(1614),
				AverageRating:    ptr(3.9473684),
			},
			want: "Title: The Odyssey, Author: Homer, Emily Wilson, Publish Year: 1614, Average Rating: 3.95",
		},
		{
			name: "no rating",
			book: types.BookSummary{
				Title:            ptr("Dune"),
				AuthorNames:      []string{"Frank Herbert"},
				FirstPublishYear: ptr(1965),
			},
			want: "Title: Dune, Author: Frank Herbert, Publish Year: 1965",
		},
		{
			name: "zero rating omitted",
			book: types.BookSummary{
				Title:         ptr("Dune"),
				AuthorNames:   []string{"Frank Herbert"},
				AverageRating: ptr(0.0),
			},
			want: "Title: Dune, Author: Frank Herbert, Publish Year: Publish Year not available.",
		},
		{
			name: "only placeholders",
			book: types.BookSummary{},
			want: "Title: Title not available., Author: Author unknown., Publish Year: Publish Year not available.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Summary(tt.book))
		})
	}
}

func TestSummaryNeverShowsZeroRating(t *testing.T) {
	for _, policy := range []types.RatingRounding{types.RoundHalfUp, types.RoundFloor} {
		line := Formatter{Rounding: policy}.Summary(types.BookSummary{
			Title:         ptr("Dune"),
			AverageRating: ptr(0.0),
		})
		assert.False(t, strings.Contains(line, "Average Rating"), "policy %s: %q", policy, line)
	}
}

func TestISBNBook(t *testing.T) {
	f := Formatter{}

	got := f.ISBNBook(types.BookByISBN{Title: ptr("Dune"), PublishDate: ptr("1990")}, "Frank Herbert")
	assert.Equal(t, "Title: Dune, Author: Frank Herbert, Publish Year: 1990", got)

	got = f.ISBNBook(types.BookByISBN{Title: ptr("Dune")}, "")
	assert.Equal(t, "Title: Dune, Author: Author unknown., Publish Year: Publish Year not available.", got)
}

func TestParseRounding(t *testing.T) {
	tests := []struct {
		in      string
		want    types.RatingRounding
		wantErr bool
	}{
		{"", types.RoundHalfUp, false},
		{"round", types.RoundHalfUp, false},
		{" Floor ", types.RoundFloor, false},
		{"ceil", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRounding(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown rating rounding")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
