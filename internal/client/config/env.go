package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with EVENTLANE_* environment variables. A .env
// file in the working directory is loaded first; a missing file is not an
// error. Values already present in the environment win over the file, which
// is godotenv's default behavior.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EVENTLANE_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("EVENTLANE_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("EVENTLANE_CURRENCY_SYMBOL"); v != "" {
		cfg.CurrencySymbol = v
	}
	if v := os.Getenv("EVENTLANE_PLACEHOLDER_IMAGE"); v != "" {
		cfg.PlaceholderImage = v
	}
	if v := os.Getenv("EVENTLANE_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}
