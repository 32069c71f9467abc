package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giclean/pkg/contracts/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/raw", cfg.Paths.RawDir)
	assert.Equal(t, "data/cleaned", cfg.Paths.CleanedDir)
	assert.Equal(t, "data/csv", cfg.Paths.CSVDir)
	assert.Equal(t, "data/returns", cfg.Paths.ReturnsDir)

	assert.Equal(t, 8, cfg.Cleaning.HeaderRows)
	assert.Equal(t, []int{1, 1}, cfg.Cleaning.LeadingColumnStrips)
	assert.Equal(t, 2, cfg.Cleaning.ReturnLeadingColumns)
	assert.Equal(t, 1, cfg.Cleaning.SubtotalRowIndex)
	assert.Equal(t, domain.KeyColumn, cfg.Cleaning.KeyColumn)
	assert.Equal(t, domain.CanonicalOrder, cfg.Cleaning.CanonicalOrder)
	assert.False(t, cfg.Cleaning.AllowMissingColumns)
	assert.False(t, cfg.Cleaning.Overwrite)
	assert.Equal(t, 1, cfg.Cleaning.Parallelism)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
paths:
  raw_dir: /srv/exports/raw
cleaning:
  header_rows: 6
  overwrite: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/srv/exports/raw", cfg.Paths.RawDir)
	assert.Equal(t, 6, cfg.Cleaning.HeaderRows)
	assert.True(t, cfg.Cleaning.Overwrite)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched values keep their defaults.
	assert.Equal(t, "data/cleaned", cfg.Paths.CleanedDir)
	assert.Equal(t, []int{1, 1}, cfg.Cleaning.LeadingColumnStrips)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("cleaning:\n  header_rows: 6\n"), 0o644))

	t.Setenv("GICLEAN_CLEANING_HEADER_ROWS", "4")
	t.Setenv("GICLEAN_PATHS_RAW_DIR", "/env/raw")
	t.Setenv("GICLEAN_CLEANING_KEY_COLUMN", "Delivery Type")

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Cleaning.HeaderRows)
	assert.Equal(t, "/env/raw", cfg.Paths.RawDir)
	assert.Equal(t, "Delivery Type", cfg.Cleaning.KeyColumn)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad log level",
			content: "logging:\n  level: loud\n",
		},
		{
			name:    "bad log output",
			content: "logging:\n  output: speaker\n",
		},
		{
			name:    "empty canonical order",
			content: "cleaning:\n  canonical_order: []\n",
		},
		{
			name:    "zero parallelism",
			content: "cleaning:\n  parallelism: 0\n",
		},
		{
			name:    "missing raw dir",
			content: "paths:\n  raw_dir: \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0o644))

			_, err := Load(configFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("paths: [not a map"), 0o644))

	_, err := Load(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.RawDir = "/abs/raw"

	paths, err := ResolvePaths(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/abs/raw", paths.RawDir)
	assert.True(t, filepath.IsAbs(paths.CleanedDir))
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "data/cleaned"), paths.CleanedDir)
	assert.Equal(t, filepath.Join(paths.LogsDir, "run.log"), paths.GetLogPath("run.log"))
}

func TestEnsureLogsDir(t *testing.T) {
	paths := &Paths{LogsDir: filepath.Join(t.TempDir(), "logs")}
	require.NoError(t, paths.EnsureLogsDir())

	info, err := os.Stat(paths.LogsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
