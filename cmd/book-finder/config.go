// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/book-finder/internal/format"
	"github.com/pdiddy/book-finder/internal/recommend"
	"github.com/pdiddy/book-finder/pkg/types"
)

// setDefaults registers every configuration key so that environment
// overrides are seen by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.user_agent", d.HTTP.UserAgent)

	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.limit", d.Catalog.Limit)
	v.SetDefault("catalog.requests_per_second", d.Catalog.RequestsPerSecond)
	v.SetDefault("catalog.burst", d.Catalog.Burst)

	v.SetDefault("recommend.enabled", d.Recommend.Enabled)
	v.SetDefault("recommend.model", d.Recommend.Model)
	v.SetDefault("recommend.api_key", "")
	v.SetDefault("recommend.base_url", "")
	v.SetDefault("recommend.temperature", d.Recommend.Temperature)
	v.SetDefault("recommend.max_output_tokens", d.Recommend.MaxOutputTokens)

	v.SetDefault("format.rating_rounding", string(d.Format.RatingRounding))

	v.SetDefault("log.level", d.Log.Level)
}

// bindEnv maps BOOK_FINDER_CATALOG_LIMIT style variables onto config keys.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("BOOK_FINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func loadConfig() (types.Config, error) {
	return decodeConfig(viper.GetViper())
}

// decodeConfig unmarshals and validates the configuration held by v.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	rounding, err := format.ParseRounding(string(cfg.Format.RatingRounding))
	if err != nil {
		return types.Config{}, err
	}
	cfg.Format.RatingRounding = rounding

	if cfg.Catalog.Limit <= 0 {
		return types.Config{}, fmt.Errorf("catalog.limit must be positive, got %d", cfg.Catalog.Limit)
	}
	if cfg.HTTP.Timeout <= 0 {
		return types.Config{}, fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTP.Timeout)
	}
	if err := recommend.Validate(cfg.Recommend); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration after defaults, the config file, and
BOOK_FINDER_* environment overrides are applied. The API key is redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := renderConfig(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderConfig marshals cfg to YAML with the API key redacted.
func renderConfig(cfg types.Config) (string, error) {
	if cfg.Recommend.APIKey != "" {
		cfg.Recommend.APIKey = "REDACTED"
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
