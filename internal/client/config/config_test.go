package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", cfg.BackendBaseURL)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "app.db", filepath.Base(cfg.DBPath))
}

func TestParseEnvOverridesDefaults(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://backend.example:8080")
	t.Setenv(EnvDBPath, "/tmp/otra.db")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "http://backend.example:8080", cfg.BackendBaseURL)
	assert.Equal(t, "/tmp/otra.db", cfg.DBPath)
}

func TestParseEnvEmptyKeepsExisting(t *testing.T) {
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvDBPath, "")

	var cfg Config
	cfg.LoadDefaults()
	before := cfg
	parseEnv(&cfg)

	assert.Equal(t, before, cfg)
}

func TestParseJsonOverlay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"backend_base_url":"http://json.example"}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"menacor", "-c", file}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	dbBefore := cfg.DBPath
	parseJson(&cfg)

	assert.Equal(t, "http://json.example", cfg.BackendBaseURL)
	// Absent JSON fields leave earlier stages untouched.
	assert.Equal(t, dbBefore, cfg.DBPath)
}

func TestParseFlagsOverrideAll(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"menacor", "-a", "http://flag.example", "-d", "/tmp/flag.db"}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://flag.example", cfg.BackendBaseURL)
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)
}
