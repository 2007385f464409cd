// Package config assembles runtime settings for the RentAHouse client from
// defaults, environment variables, an optional JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - BaseURL: root of the REST API, e.g. "http://localhost:3000/api".
//   - RequestTimeout: overall per-request deadline for API calls.
//   - DatabaseDSN: path of the local sqlite settings database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "rentahouse.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config), and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
