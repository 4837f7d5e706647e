package config

import "os"

// Environment variable names. MENACOR_BACKEND_URL is the documented way to
// point an installed client at a different backend without touching flags.
const (
	EnvBackendURL = "MENACOR_BACKEND_URL"
	EnvDBPath     = "MENACOR_DB_PATH"
)

func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
}
