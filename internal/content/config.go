package content

import (
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8000"

// Config holds content-service client configuration.
type Config struct {
	// BaseURL is the root of the content service, without trailing slash.
	BaseURL string

	// Timeout is the maximum duration for a single request. Default: 30s.
	Timeout time.Duration

	// TheoryFormat is the format hint sent with theory requests.
	TheoryFormat string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:      defaultBaseURL,
		Timeout:      30 * time.Second,
		TheoryFormat: "markdown",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("SCIQUIZ_SERVER_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SCIQUIZ_REQUEST_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}
