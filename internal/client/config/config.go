package config

import "time"

// Config holds runtime settings for the EventLane CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - HTTPTimeout: per-request timeout for API calls.
//   - CurrencySymbol: symbol prepended to formatted amounts.
//   - PlaceholderImage: URL substituted for events without an image.
//   - SessionDBPath: path of the local SQLite file holding the session.
type Config struct {
	APIBaseURL       string
	HTTPTimeout      time.Duration
	CurrencySymbol   string
	PlaceholderImage string
	SessionDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.HTTPTimeout = 10 * time.Second
	c.CurrencySymbol = "$"
	c.PlaceholderImage = "https://placehold.co/600x400?text=Event"
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
