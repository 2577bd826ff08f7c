// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders catalog records as single display lines.
//
//	Title: Dune, Author: Frank Herbert, Publish Year: 1965, Average Rating: 4.27
//
// Absent optional fields are replaced by fixed placeholders; an absent rating
// drops the rating clause entirely.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/book-finder/pkg/types"
)

// Placeholders for absent fields.
const (
	UnknownTitle  = "Title not available."
	UnknownAuthor = "Author unknown."
	UnknownYear   = "Publish Year not available."
)

// Formatter renders book lines. The zero value rounds half-up.
type Formatter struct {
	Rounding types.RatingRounding
}

// ParseRounding validates a rating_rounding configuration value. An empty
// string selects the default.
func ParseRounding(s string) (types.RatingRounding, error) {
	switch r := types.RatingRounding(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return types.RoundHalfUp, nil
	case types.RoundHalfUp, types.RoundFloor:
		return r, nil
	default:
		return "", fmt.Errorf("unknown rating rounding %q: want %q or %q", s, types.RoundHalfUp, types.RoundFloor)
	}
}

// Summary formats a search document.
func (f Formatter) Summary(b types.BookSummary) string {
	year := UnknownYear
	if b.FirstPublishYear != nil {
		year = strconv.Itoa(*b.FirstPublishYear)
	}
	line := bookLine(b.Title, Authors(b.AuthorNames), year)
	if rating, ok := f.Rating(b.AverageRating); ok {
		line += ", Average Rating: " + rating
	}
	return line
}

// ISBNBook formats an edition record whose author has already been resolved.
// An empty author shows the unknown-author placeholder.
func (f Formatter) ISBNBook(b types.BookByISBN, author string) string {
	if author == "" {
		author = UnknownAuthor
	}
	year := UnknownYear
	if b.PublishDate != nil && *b.PublishDate != "" {
		year = *b.PublishDate
	}
	return bookLine(b.Title, author, year)
}

// Authors joins names with ", " in source order.
func Authors(names []string) string {
	if len(names) == 0 {
		return UnknownAuthor
	}
	return strings.Join(names, ", ")
}

// Rating reduces r to two decimals under the configured rounding policy.
// It reports false when the rating is absent or reduces to zero, the
// catalog's "no ratings" value.
func (f Formatter) Rating(r *float64) (string, bool) {
	if r == nil {
		return "", false
	}
	v := f.reduce(*r)
	if v == 0 {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', 2, 64), true
}

func (f Formatter) reduce(r float64) float64 {
	if f.Rounding == types.RoundFloor {
		return math.Floor(r*100) / 100
	}
	return math.Floor(r*100+0.5) / 100
}

func bookLine(title *string, author, year string) string {
	t := UnknownTitle
	if title != nil && *title != "" {
		t = *title
	}
	return fmt.Sprintf("Title: %s, Author: %s, Publish Year: %s", t, author, year)
}
