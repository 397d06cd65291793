package imagery

import (
	"fmt"
	"os"
	"time"
)

// Config holds image search and download configuration.
type Config struct {
	// APIKey is the Google Custom Search API key.
	APIKey string

	// SearchEngineID is the programmable search engine ID (cx).
	SearchEngineID string

	// BaseURL overrides the search endpoint. Used in tests.
	BaseURL string

	// Timeout bounds every search and download request. Default: 15s.
	Timeout time.Duration

	// ResultsPerQuery is the number of candidate URLs requested per
	// search. Default: 5.
	ResultsPerQuery int

	// MaxDimension is the longest edge images are downscaled to after
	// decoding. Default: 800.
	MaxDimension int

	// UserAgent is sent on download requests. Some image hosts reject
	// requests without a browser-like agent.
	UserAgent string
}

const defaultSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:         defaultSearchBaseURL,
		Timeout:         15 * time.Second,
		ResultsPerQuery: 5,
		MaxDimension:    800,
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("VISUALEARN_SEARCH_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("GOOGLE_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if id := os.Getenv("VISUALEARN_SEARCH_ENGINE_ID"); id != "" {
		cfg.SearchEngineID = id
	} else if id := os.Getenv("SEARCH_ENGINE_ID"); id != "" {
		cfg.SearchEngineID = id
	}

	return cfg
}

// Validate checks that search credentials are present.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("VISUALEARN_SEARCH_API_KEY is required for image search")
	}
	if c.SearchEngineID == "" {
		return fmt.Errorf("VISUALEARN_SEARCH_ENGINE_ID is required for image search")
	}
	return nil
}
