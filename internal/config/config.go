// Package config provides configuration management for brickset.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. the YAML config file (see FindConfigPath)
//  3. BRICKSET_* environment variables, including those from a .env file
//
// Command line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or starts from defaults if none found
func Load() (*Config, string, error) {
	path, err := FindConfigPath()
	if err != nil {
		return nil, "", fmt.Errorf("find config: %w", err)
	}

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.finish(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.finish(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// DefaultConfig returns the settings of the original brickset report
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: "brickset.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Report: ReportConfig{
			Tag:            "Microscale",
			PieceThreshold: 100,
			Letter:         "P",
		},
	}
}

// finish applies environment overrides and validates the result
func (c *Config) finish() error {
	if err := c.applyEnv(); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	return c.Validate()
}

// applyEnv overlays BRICKSET_* variables; a double underscore separates
// nested keys, e.g. BRICKSET_REPORT__PIECE_THRESHOLD -> report.piece_threshold
func (c *Config) applyEnv() error {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// Names the file itself, not a setting
		if s == EnvConfigPath {
			return ""
		}
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return err
	}

	return k.Unmarshal("", c)
}

// Validate checks the config against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LetterRune returns the report letter as a rune
func (r ReportConfig) LetterRune() rune {
	l, _ := utf8.DecodeRuneInString(r.Letter)
	return l
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	format := c.Data.Format
	if format == "" {
		format = "auto"
	}
	return fmt.Sprintf("Data: %s (%s), Report: tag=%q threshold=%d letter=%q",
		c.Data.Path, format, c.Report.Tag, c.Report.PieceThreshold, c.Report.Letter)
}
