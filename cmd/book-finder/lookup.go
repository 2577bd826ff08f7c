// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/pdiddy/book-finder/internal/catalog"
	"github.com/pdiddy/book-finder/internal/format"
	"github.com/pdiddy/book-finder/internal/recommend"
	"github.com/pdiddy/book-finder/internal/search"
	"github.com/pdiddy/book-finder/internal/secrets"
	"github.com/pdiddy/book-finder/internal/session"
)

// linePrompter reads answers with line editing.
type linePrompter struct {
	state *liner.State
}

func newLinePrompter() *linePrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linePrompter{state: state}
}

// Prompt maps Ctrl-C to io.EOF so an abort ends the session quietly.
func (p *linePrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return line, err
}

func (p *linePrompter) Close() error {
	return p.state.Close()
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	searcher := &search.Searcher{
		Catalog:   catalog.New(cfg.Catalog, cfg.HTTP),
		Formatter: format.Formatter{Rounding: cfg.Format.RatingRounding},
		Limit:     cfg.Catalog.Limit,
	}

	prompter := newLinePrompter()
	defer prompter.Close()

	sess := &session.Session{
		Prompter: prompter,
		Searcher: searcher,
		Out:      os.Stdout,
	}
	if cfg.Recommend.Enabled {
		cfg.Recommend.APIKey = secrets.GeminiAPIKey(cfg.Recommend.APIKey, loadedSecrets, loadedEnv)
		backend := recommend.NewGeminiBackend(cfg.Recommend, &http.Client{Timeout: cfg.HTTP.Timeout})
		sess.Recommender = recommend.New(backend, cfg.Recommend)
	}

	return sess.Run(cmd.Context())
}
