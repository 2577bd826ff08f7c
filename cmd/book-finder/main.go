// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the book-finder CLI.
// Running book-finder with no subcommand starts the interactive lookup:
// choose title, author, or ISBN, enter the term, and optionally a sort
// keyword. Title and author searches are followed by Gemini recommendations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/book-finder/internal/logger"
	"github.com/pdiddy/book-finder/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	secretsDir = ".secrets/"
	envFile    = ".env"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// loadedEnv holds variables parsed from .env at startup.
var loadedEnv map[string]string

// rootCmd is the base command for the book-finder CLI.
var rootCmd = &cobra.Command{
	Use:   "book-finder",
	Short: "Look up books in Open Library and get reading recommendations",
	Long: `book-finder searches the Open Library catalog by title, author, or ISBN.
ISBN lookups resolve the first author's name with a second request. Title and
author searches that find books are followed by recommendations from the
Gemini API, seeded with the search term.

The Gemini API key is read from recommend.api_key, .secrets/gemini-api-key,
or GOOGLE_APPLICATION_API_KEY (process environment or .env).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logger.Setup(os.Stderr, cfg.Log.Level); err != nil {
			return err
		}

		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logrus.Infof("loaded secrets: %v", keys)
		}

		env, err := secrets.LoadEnvFile(envFile)
		if err != nil {
			return err
		}
		loadedEnv = env
		return nil
	},
	RunE: runLookup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./book-finder.yaml or ~/.config/book-finder/book-finder.yaml)")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("book-finder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "book-finder"))
		}
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
