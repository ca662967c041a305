package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"CONFIG_PATH", "PORT", "DATA_SOURCE", "DATA_PATH", "DB_PATH", "JWT_SECRET",
		"RATE_LIMIT", "RATE_BURST", "LOG_LEVEL", "LOG_FORMAT", "HUE_UPPER_BOUND",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, 135.0, cfg.Heatmap.HueUpperBound)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: ":9090"
data_source: sqlite
db_path: /tmp/records.db
log_format: json
heatmap:
  hue_upper_bound: 100
`), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DataSource)
	assert.Equal(t, "/tmp/records.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 100.0, cfg.Heatmap.HueUpperBound)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"DATA_SOURCE": "postgres"}},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad hue", map[string]string{"HUE_UPPER_BOUND": "400"}},
		{"unparseable rate", map[string]string{"RATE_LIMIT": "fast"}},
		{"negative burst", map[string]string{"RATE_BURST": "-1"}},
		{"missing file", map[string]string{"CONFIG_PATH": "/nonexistent/config.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateRequiresPathForSource(t *testing.T) {
	cfg := Default()
	cfg.DataSource = "sqlite"
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg.DBPath = "records.db"
	assert.NoError(t, cfg.Validate())
}
