package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, 0, cfg.Ingestion.MaxSkippedLines)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
paths:
  data_dir: /srv/meters
  output_dir: /srv/out
logging:
  level: debug
  output: console
ingestion:
  max_skipped_lines: 25
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/meters", cfg.Paths.DataDir)
	assert.Equal(t, "/srv/out", cfg.Paths.OutputDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir, "unset file values keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, 25, cfg.Ingestion.MaxSkippedLines)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("paths:\n  data_dir: /from/file\n"), 0644))

	t.Setenv("ENERGYDASH_PATHS_DATA_DIR", "/from/env")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Paths.DataDir)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("paths: [broken\n"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log output", func(c *Config) { c.Logging.Output = "syslog" }},
		{"negative skip limit", func(c *Config) { c.Ingestion.MaxSkippedLines = -1 }},
		{"empty data dir", func(c *Config) { c.Paths.DataDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.LogsDir = filepath.Join(dir, "logs")

	require.NoError(t, cfg.EnsureDirectories())

	assert.DirExists(t, cfg.Paths.OutputDir)
	assert.DirExists(t, cfg.Paths.LogsDir)
	assert.NoDirExists(t, cfg.Paths.DataDir, "input directory is never created implicitly")
}
