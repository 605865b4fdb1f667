package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/eventlane/eventlane/internal/flagx"
	"github.com/eventlane/eventlane/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type jsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	HTTPTimeout      timex.Duration `json:"http_timeout"`
	CurrencySymbol   string         `json:"currency_symbol"`
	PlaceholderImage string         `json:"placeholder_image"`
	SessionDBPath    string         `json:"session_db_path"`
}

// parseJSON overlays Config with values loaded from a JSON file named via
// the -c or -config flag. No flag means no JSON is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors since a named but broken config file is a setup mistake
// the user must see immediately.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.CurrencySymbol != "" {
		cfg.CurrencySymbol = jc.CurrencySymbol
	}
	if jc.PlaceholderImage != "" {
		cfg.PlaceholderImage = jc.PlaceholderImage
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
