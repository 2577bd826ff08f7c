// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout bounds each request, connection through body read.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with catalog requests
	// (e.g. "book-finder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CatalogConfig holds settings for the Open Library catalog client.
type CatalogConfig struct {
	// BaseURL is the catalog root, without a trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Limit is the number of search results requested (default 10).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`

	// RequestsPerSecond throttles catalog calls. Zero disables throttling.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// Burst is the limiter bucket size.
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// RecommendConfig holds settings for the recommendation stage.
type RecommendConfig struct {
	// Enabled controls whether title and author searches are followed by
	// a recommendation call.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Model is the generation model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey authenticates against the generation API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the SDK endpoint. Empty uses the SDK default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Temperature controls output randomness, in [0, 1].
	Temperature float32 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxOutputTokens caps the generated answer length.
	MaxOutputTokens int32 `json:"max_output_tokens" yaml:"max_output_tokens" mapstructure:"max_output_tokens"`
}

// RatingRounding selects how average ratings are reduced to two decimals.
type RatingRounding string

const (
	RoundHalfUp RatingRounding = "round"
	RoundFloor  RatingRounding = "floor"
)

// FormatConfig holds display settings.
type FormatConfig struct {
	RatingRounding RatingRounding `json:"rating_rounding" yaml:"rating_rounding" mapstructure:"rating_rounding"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name (debug, info, warning, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all stage configurations.
type Config struct {
	HTTP      HTTPConfig      `json:"http" yaml:"http" mapstructure:"http"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Recommend RecommendConfig `json:"recommend" yaml:"recommend" mapstructure:"recommend"`
	Format    FormatConfig    `json:"format" yaml:"format" mapstructure:"format"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "book-finder/0.1",
		},
		Catalog: CatalogConfig{
			BaseURL:           "https://openlibrary.org",
			Limit:             10,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Recommend: RecommendConfig{
			Enabled:         true,
			Model:           "gemini-1.5-flash",
			Temperature:     0.8,
			MaxOutputTokens: 300,
		},
		Format: FormatConfig{
			RatingRounding: RoundHalfUp,
		},
		Log: LogConfig{
			Level: "warning",
		},
	}
}
