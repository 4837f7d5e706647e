package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Contains(t, cfg.DatabaseDSN, "postgres://")
}

func TestParseEnv(t *testing.T) {
	t.Setenv("MENACOR_SERVER_ADDR", ":9999")
	t.Setenv("MENACOR_SERVER_DSN", "postgres://u:p@db:5432/menacor")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "postgres://u:p@db:5432/menacor", cfg.DatabaseDSN)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server", "-a", ":8080"}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	dsnBefore := cfg.DatabaseDSN
	parseFlags(&cfg)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, dsnBefore, cfg.DatabaseDSN)
}
