// Package config loads runtime configuration for the Menacor Vital CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (MENACOR_BACKEND_URL, MENACOR_DB_PATH).
//  4. Command-line flags (-a, -d), which override earlier values.
package config

import "github.com/RichiMaiden/menacor-vital/internal/filex"

// Config holds runtime settings for the Menacor Vital CLI.
//
// Fields:
//   - BackendBaseURL: base URL of the sync backend (scheme://host:port).
//   - DBPath: path of the local SQLite file, resolved once at startup.
type Config struct {
	BackendBaseURL string
	DBPath         string
}

// LoadDefaults populates c with sensible defaults: the local development
// backend, and a database file in the user-scoped data directory (falling
// back to the working directory when that is unwritable).
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://127.0.0.1:5000"
	c.DBPath = filex.ResolveDataFile("app.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
