// Package config loads the abacus command configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "abacus.yaml"

// Config holds all abacus settings.
type Config struct {
	// Session limits
	HistoryLimit int `yaml:"history_limit"`
	MemoryLimit  int `yaml:"memory_limit"`

	// Evaluator settings
	Evaluator EvaluatorConfig `yaml:"evaluator"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Interactive front-end
	UI UIConfig `yaml:"ui"`
}

// EvaluatorConfig configures expression evaluation.
type EvaluatorConfig struct {
	Memoize   bool `yaml:"memoize"`    // wrap the evaluator in a result cache
	CacheSize int  `yaml:"cache_size"` // cached results kept when memoizing
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // human-readable console output
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	Panel string `yaml:"panel"` // history or memory, shown at startup
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		HistoryLimit: 100,
		MemoryLimit:  10,
		Evaluator: EvaluatorConfig{
			Memoize:   true,
			CacheSize: 256,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Panel: "history",
		},
	}
}

// Load reads path from fsys over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(fsys afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path on fsys, creating parent directories.
func Save(fsys afero.Fs, path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks limits and enumerated values.
func (c Config) Validate() error {
	var errs []error
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit))
	}
	if c.MemoryLimit < 0 {
		errs = append(errs, fmt.Errorf("memory_limit must not be negative, got %d", c.MemoryLimit))
	}
	if c.Evaluator.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("evaluator.cache_size must not be negative, got %d", c.Evaluator.CacheSize))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.UI.Panel {
	case "", "history", "memory":
	default:
		errs = append(errs, fmt.Errorf("ui.panel %q is not one of history, memory", c.UI.Panel))
	}
	return errors.Join(errs...)
}
