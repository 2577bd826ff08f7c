// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs one catalog lookup (title, author, or ISBN) and prints
// the formatted results. An ISBN lookup that names an author is followed by
// a single author-detail call. Recommendations are not triggered here; the
// returned Outcome tells the caller whether anything was found.
package search

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/book-finder/internal/format"
	"github.com/pdiddy/book-finder/pkg/types"
)

// DefaultLimit is the number of search results requested when no limit is
// configured.
const DefaultLimit = 10

// Catalog is the set of catalog requests the searcher needs. catalog.Client
// implements it.
type Catalog interface {
	SearchByTitle(ctx context.Context, title, sort string, limit int) (types.SearchResult, error)
	SearchByAuthor(ctx context.Context, author, sort string, limit int) (types.SearchResult, error)
	FetchByISBN(ctx context.Context, isbn string) (types.BookByISBN, error)
	FetchAuthor(ctx context.Context, id string) (types.AuthorDetail, error)
}

// Mode selects the catalog operation.
type Mode int

const (
	ModeTitle Mode = iota + 1
	ModeAuthor
	ModeISBN
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeAuthor:
		return "author"
	case ModeISBN:
		return "isbn"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sortable reports whether the mode accepts a sort keyword.
func (m Mode) Sortable() bool {
	return m == ModeTitle || m == ModeAuthor
}

// ParseMode maps a menu choice ("1", "2", "3") to a Mode.
func ParseMode(choice string) (Mode, error) {
	switch choice {
	case "1":
		return ModeTitle, nil
	case "2":
		return ModeAuthor, nil
	case "3":
		return ModeISBN, nil
	default:
		return 0, fmt.Errorf("invalid choice %q", choice)
	}
}

// Request is one search invocation. Sort is forwarded verbatim and ignored
// for ISBN lookups.
type Request struct {
	Mode Mode
	Term string
	Sort string
}

// Outcome reports what a search printed.
type Outcome struct {
	Request Request

	// Found is true when at least one book line was printed.
	Found bool
}

// Searcher runs requests against a Catalog.
type Searcher struct {
	Catalog   Catalog
	Formatter format.Formatter

	// Limit is the number of search results requested. Zero uses DefaultLimit.
	Limit int
}

// Run performs req and writes the output to w. A failed call is printed as
// "Error: ..." and returned; nothing further is attempted.
func (s *Searcher) Run(ctx context.Context, req Request, w io.Writer) (Outcome, error) {
	var (
		out Outcome
		err error
	)
	switch req.Mode {
	case ModeTitle, ModeAuthor:
		out, err = s.runSearch(ctx, req, w)
	case ModeISBN:
		out, err = s.runISBN(ctx, req, w)
	default:
		out, err = Outcome{Request: req}, fmt.Errorf("unsupported search mode %v", req.Mode)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return out, err
}

func (s *Searcher) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return DefaultLimit
}

func (s *Searcher) runSearch(ctx context.Context, req Request, w io.Writer) (Outcome, error) {
	out := Outcome{Request: req}

	var (
		res types.SearchResult
		err error
	)
	if req.Mode == ModeTitle {
		res, err = s.Catalog.SearchByTitle(ctx, req.Term, req.Sort, s.limit())
	} else {
		res, err = s.Catalog.SearchByAuthor(ctx, req.Term, req.Sort, s.limit())
	}
	if err != nil {
		return out, err
	}

	if len(res.Docs) == 0 {
		if req.Mode == ModeTitle {
			fmt.Fprintln(w, "There is no book in our Library by that title.")
		} else {
			fmt.Fprintf(w, "No books found by author: %s\n", req.Term)
		}
		return out, nil
	}

	if req.Mode == ModeAuthor {
		fmt.Fprintf(w, "Books found: %d\n", res.NumFound)
	}
	for _, doc := range res.Docs {
		fmt.Fprintln(w, s.Formatter.Summary(doc))
		fmt.Fprintln(w)
	}
	out.Found = true
	return out, nil
}

func (s *Searcher) runISBN(ctx context.Context, req Request, w io.Writer) (Outcome, error) {
	out := Outcome{Request: req}

	book, err := s.Catalog.FetchByISBN(ctx, req.Term)
	if err != nil {
		return out, err
	}

	if book.Title == nil {
		fmt.Fprintf(w, "No book found for ISBN: %s\n", req.Term)
		return out, nil
	}

	// Editions carry author references, not names; the first reference
	// is resolved with a second call.
	author := ""
	if len(book.Authors) > 0 {
		detail, err := s.Catalog.FetchAuthor(ctx, book.Authors[0].AuthorID())
		if err != nil {
			return out, err
		}
		author = detail.DisplayName()
	}

	fmt.Fprintln(w, s.Formatter.ISBNBook(book, author))
	fmt.Fprintln(w)
	out.Found = true
	return out, nil
}
