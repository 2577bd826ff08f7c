// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the book-finder stages:
// catalog responses, author lookups, recommendation payloads, and configuration.
//
// Optional catalog fields are pointers (or nil slices) so that an absent
// field can be told apart from a zero value.
package types

import "strings"

// SearchResult is the body of a catalog search.json response.
type SearchResult struct {
	NumFound int           `json:"numFound" yaml:"num_found"`
	Start    int           `json:"start" yaml:"start"`
	Docs     []BookSummary `json:"docs" yaml:"docs"`
}

// BookSummary is one document from a title or author search.
type BookSummary struct {
	Title            *string  `json:"title" yaml:"title"`
	AuthorNames      []string `json:"author_name" yaml:"author_names"`
	FirstPublishYear *int     `json:"first_publish_year" yaml:"first_publish_year"`

	// AverageRating is nil when the catalog has no ratings for the work.
	AverageRating *float64 `json:"ratings_average" yaml:"average_rating"`
}

// BookByISBN is the edition record returned by isbn/{isbn}.json.
type BookByISBN struct {
	Title       *string     `json:"title" yaml:"title"`
	Authors     []AuthorRef `json:"authors" yaml:"authors"`
	PublishDate *string     `json:"publish_date" yaml:"publish_date"`
}

// AuthorRef points at an author resource, e.g. {"key": "/authors/OL12345A"}.
type AuthorRef struct {
	Key string `json:"key" yaml:"key"`
}

// AuthorID returns the trailing path segment of the key.
func (a AuthorRef) AuthorID() string {
	if i := strings.LastIndex(a.Key, "/"); i >= 0 {
		return a.Key[i+1:]
	}
	return a.Key
}

// AuthorDetail is the subset of authors/{id}.json the tool displays.
type AuthorDetail struct {
	PersonalName *string `json:"personal_name" yaml:"personal_name"`
	Name         *string `json:"name" yaml:"name"`
}

// DisplayName prefers the personal name and falls back to the name field.
// It returns "" when neither is present.
func (a AuthorDetail) DisplayName() string {
	if a.PersonalName != nil && *a.PersonalName != "" {
		return *a.PersonalName
	}
	if a.Name != nil {
		return *a.Name
	}
	return ""
}
