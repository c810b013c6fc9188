// Package config loads tokenlens workspace configuration from
// .tokenlens.yaml, with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"tokenlens/internal/render"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".tokenlens.yaml"

// Config holds all tokenlens configuration.
type Config struct {
	// TrimSize is the display-truncation threshold for media attributes
	// in decoded metadata JSON.
	TrimSize int `yaml:"trim_size"`

	// OutDir is where `tokenlens extract` writes decoded content files.
	OutDir string `yaml:"out_dir"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`

	// WatchDebounceMs is how long `tokenlens watch` waits for write events
	// to settle before re-decoding.
	WatchDebounceMs int `yaml:"watch_debounce_ms"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TrimSize:        render.DefaultTrimSize,
		OutDir:          "out",
		Verbose:         false,
		WatchDebounceMs: 500,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			cfg.normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.normalize()

	return cfg, nil
}

// applyEnvOverrides applies TOKENLENS_* environment variables on top of the
// file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TOKENLENS_TRIM_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TrimSize = n
		}
	}
	if v := os.Getenv("TOKENLENS_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("TOKENLENS_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}

// normalize clamps out-of-range values back to their defaults.
func (c *Config) normalize() {
	if c.TrimSize <= 0 {
		c.TrimSize = render.DefaultTrimSize
	}
	if c.WatchDebounceMs <= 0 {
		c.WatchDebounceMs = Default().WatchDebounceMs
	}
	if c.OutDir == "" {
		c.OutDir = Default().OutDir
	}
}
