// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session drives one interactive lookup: menu choice, search term,
// optional sort keyword, the catalog search, and then (for title and author
// searches that found books) a recommendation seeded by the search term.
// The two steps are composed here rather than inside the searcher.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/book-finder/internal/logger"
	"github.com/pdiddy/book-finder/internal/search"
)

// Prompts shown to the user.
const (
	MenuPrompt  = "Input number of desired search parameter: 1) Title 2) Author 3) ISBN"
	SortPrompt  = "Enter one of the following sort options (optional): new, old, rating, random"
	InvalidMenu = "Invalid choice, please try again."
	EmptyTerm   = "Search term cannot be empty."
)

var termPrompts = map[search.Mode]string{
	search.ModeTitle:  "Enter book title: ",
	search.ModeAuthor: "Enter author name: ",
	search.ModeISBN:   "Enter book ISBN 13 from Open Library: ",
}

// Prompter reads one line of input after showing prompt. It returns io.EOF
// when input ends or the user aborts.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Searcher runs a catalog search. *search.Searcher implements it.
type Searcher interface {
	Run(ctx context.Context, req search.Request, w io.Writer) (search.Outcome, error)
}

// Recommender prints recommendations for a seed. *recommend.Recommender
// implements it.
type Recommender interface {
	Print(ctx context.Context, seed string, w io.Writer) error
}

// Session wires the interactive steps together.
type Session struct {
	Prompter    Prompter
	Searcher    Searcher
	Recommender Recommender

	// Out receives everything shown to the user.
	Out io.Writer
}

// Run performs one lookup. Search and recommendation failures are reported
// on Out and do not produce an error; only input failures other than end of
// input are returned.
func (s *Session) Run(ctx context.Context) error {
	ctx = logger.ContextWithID(ctx, uuid.NewString())

	req, ok, err := s.readRequest()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading input: %w", err)
	}
	if !ok {
		return nil
	}

	logger.For(ctx).WithField("mode", req.Mode.String()).Debug("running search")

	out, err := s.Searcher.Run(ctx, req, s.Out)
	if err != nil {
		logger.For(ctx).WithError(err).Warn("search failed")
		return nil
	}

	if out.Found && req.Mode.Sortable() && s.Recommender != nil {
		// Print reports its own failures.
		_ = s.Recommender.Print(ctx, req.Term, s.Out)
	}
	return nil
}

// readRequest prompts for the menu choice, term, and sort keyword. ok is
// false when the input was rejected and a message has been shown.
func (s *Session) readRequest() (search.Request, bool, error) {
	fmt.Fprintln(s.Out, MenuPrompt)
	choice, err := s.Prompter.Prompt("> ")
	if err != nil {
		return search.Request{}, false, err
	}

	mode, err := search.ParseMode(strings.TrimSpace(choice))
	if err != nil {
		fmt.Fprintln(s.Out, InvalidMenu)
		return search.Request{}, false, nil
	}

	term, err := s.Prompter.Prompt(termPrompts[mode])
	if err != nil {
		return search.Request{}, false, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		fmt.Fprintln(s.Out, EmptyTerm)
		return search.Request{}, false, nil
	}

	req := search.Request{Mode: mode, Term: term}
	if mode.Sortable() {
		fmt.Fprintln(s.Out, SortPrompt)
		sort, err := s.Prompter.Prompt("> ")
		if err != nil {
			return search.Request{}, false, err
		}
		req.Sort = strings.TrimSpace(sort)
		fmt.Fprintln(s.Out)
	}
	return req, true, nil
}
