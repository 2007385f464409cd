package config

import (
	"os"
	"time"
)

// Environment variable names. A .env file, when present, is loaded into the
// process environment by the entry point before LoadConfig runs.
const (
	envBaseURL     = "RENTAHOUSE_BASE_URL"
	envTimeout     = "RENTAHOUSE_REQUEST_TIMEOUT"
	envDatabaseDSN = "RENTAHOUSE_DATABASE"
)

// parseEnv overlays Config with values from the environment.
// RENTAHOUSE_REQUEST_TIMEOUT accepts time.ParseDuration syntax ("30s");
// unparseable values are ignored, keeping the previous layer's setting.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}
