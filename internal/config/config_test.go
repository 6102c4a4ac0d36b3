package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CORPUSGEN_DB", "")
	t.Setenv("CORPUSGEN_CATALOG", "")
	t.Setenv("CORPUSGEN_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("CORPUSGEN_DB", "")
	t.Setenv("CORPUSGEN_CATALOG", "")
	t.Setenv("CORPUSGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/kids.db
log:
  level: debug
defaults:
  model: fairy
  mode: dialogue
  length: long
  avoid_recent: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kids.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Log.Mode)
	assert.Equal(t, "fairy", cfg.Defaults.Model)
	assert.Equal(t, "dialogue", cfg.Defaults.Mode)
	assert.Equal(t, "auto", cfg.Defaults.Difficulty)
	assert.Equal(t, "long", cfg.Defaults.Length)
	assert.False(t, cfg.Defaults.AvoidRecent)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CORPUSGEN_DB", "/data/env.db")
	t.Setenv("CORPUSGEN_CATALOG", "~/catalog.yaml")
	t.Setenv("CORPUSGEN_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/data/env.db", cfg.DBPath)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "catalog.yaml"), cfg.CatalogPath)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_InvalidDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  mode: poem\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("CORPUSGEN_DB", "")
	t.Setenv("CORPUSGEN_CATALOG", "")
	t.Setenv("CORPUSGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Defaults.Model = "science"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
