package config

import "time"

// Config holds runtime settings for the marketplace CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API, including the /api prefix.
//   - RequestTimeout: per-request deadline for API calls.
//   - DatabasePath: path to the local sqlite file; ":memory:" is accepted.
//
// Units: RequestTimeout is a time.Duration (e.g., 30*time.Second).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "secondhand.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
