// Package config loads corpusgen settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/corpusgen/internal/model"
)

// Config is the top-level configuration file.
type Config struct {
	DBPath      string         `yaml:"db_path"`
	CatalogPath string         `yaml:"catalog_path"`
	Log         LogConfig      `yaml:"log"`
	Defaults    DefaultsConfig `yaml:"defaults"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

// DefaultsConfig holds the generation settings used when flags are omitted.
type DefaultsConfig struct {
	Model       string `yaml:"model"`
	Mode        string `yaml:"mode"`
	Difficulty  string `yaml:"difficulty"`
	Length      string `yaml:"length"`
	AvoidRecent bool   `yaml:"avoid_recent"`
}

// Dir is the per-user data directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".corpusgen")
}

// DefaultPath is where the config file is looked up when none is given.
func DefaultPath() string {
	if env := os.Getenv("CORPUSGEN_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath: filepath.Join(Dir(), "corpus.db"),
		Log: LogConfig{
			Mode:  "development",
			Level: "warn",
		},
		Defaults: DefaultsConfig{
			Model:       "math",
			Mode:        string(model.ModeSingle),
			Difficulty:  string(model.DifficultyAuto),
			Length:      string(model.LengthMedium),
			AvoidRecent: true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.CatalogPath = expandHome(cfg.CatalogPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CORPUSGEN_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CORPUSGEN_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("CORPUSGEN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the generation defaults.
func (c *Config) Validate() error {
	if _, err := model.ParseMode(c.Defaults.Mode); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if _, err := model.ParseDifficulty(c.Defaults.Difficulty); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if _, err := model.ParseLength(c.Defaults.Length); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
