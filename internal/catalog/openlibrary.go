// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog defines the requests the tool makes against the Open
// Library catalog: search by title, search by author, fetch an edition by
// ISBN, and fetch author details.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/book-finder/internal/httputil"
	"github.com/pdiddy/book-finder/internal/logger"
	"github.com/pdiddy/book-finder/pkg/types"
)

// Client is the Open Library client.
type Client struct {
	HTTP *httputil.Client

	// BaseURL is the catalog root, e.g. "https://openlibrary.org".
	BaseURL string
}

// New builds a Client from the catalog and HTTP configuration.
func New(cfg types.CatalogConfig, httpCfg types.HTTPConfig) *Client {
	return &Client{
		HTTP:    httputil.NewClient(httpCfg, cfg.RequestsPerSecond, cfg.Burst),
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// SearchByTitle queries search.json?title=... . An empty sort is omitted.
func (c *Client) SearchByTitle(ctx context.Context, title, sort string, limit int) (types.SearchResult, error) {
	return c.search(ctx, "title", title, sort, limit)
}

// SearchByAuthor queries search.json?author=... . An empty sort is omitted.
func (c *Client) SearchByAuthor(ctx context.Context, author, sort string, limit int) (types.SearchResult, error) {
	return c.search(ctx, "author", author, sort, limit)
}

func (c *Client) search(ctx context.Context, field, term, sort string, limit int) (types.SearchResult, error) {
	params := url.Values{field: {term}}
	// The sort keyword is an upstream contract (new, old, rating, random)
	// and is forwarded without local validation.
	if sort != "" {
		params.Set("sort", sort)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	defer logger.Track(ctx, "catalog search by "+field)()

	var res types.SearchResult
	if err := c.HTTP.GetJSON(ctx, c.BaseURL+"/search.json?"+params.Encode(), &res); err != nil {
		return types.SearchResult{}, fmt.Errorf("searching by %s: %w", field, err)
	}
	return res, nil
}

// FetchByISBN fetches isbn/{isbn}.json.
func (c *Client) FetchByISBN(ctx context.Context, isbn string) (types.BookByISBN, error) {
	defer logger.Track(ctx, "catalog isbn lookup")()

	var book types.BookByISBN
	u := fmt.Sprintf("%s/isbn/%s.json", c.BaseURL, url.PathEscape(isbn))
	if err := c.HTTP.GetJSON(ctx, u, &book); err != nil {
		return types.BookByISBN{}, fmt.Errorf("fetching ISBN %s: %w", isbn, err)
	}
	return book, nil
}

// FetchAuthor fetches authors/{id}.json. id is the bare identifier
// (e.g. "OL12345A"), see types.AuthorRef.AuthorID.
func (c *Client) FetchAuthor(ctx context.Context, id string) (types.AuthorDetail, error) {
	defer logger.Track(ctx, "catalog author lookup")()

	var author types.AuthorDetail
	u := fmt.Sprintf("%s/authors/%s.json", c.BaseURL, url.PathEscape(id))
	if err := c.HTTP.GetJSON(ctx, u, &author); err != nil {
		return types.AuthorDetail{}, fmt.Errorf("fetching author %s: %w", id, err)
	}
	return author, nil
}
