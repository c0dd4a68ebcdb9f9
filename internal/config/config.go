// Package config provides configuration types, defaults and validation for
// areacalc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/areacalc/internal/log"
)

// MaxPrecision bounds ui.precision.
const MaxPrecision = 12

// Config holds all configuration options for areacalc.
type Config struct {
	Debug    bool     `mapstructure:"debug"`
	LogPath  string   `mapstructure:"log_path"`
	LogLevel string   `mapstructure:"log_level"` // debug, info, warn or error
	UI       UIConfig `mapstructure:"ui"`
}

// UIConfig holds transcript presentation options.
type UIConfig struct {
	Color     bool `mapstructure:"color"`     // Style banner, headings and diagnostics with lipgloss
	Precision int  `mapstructure:"precision"` // Digits after the decimal point in "Area:" lines
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Debug:    false,
		LogPath:  "debug.log",
		LogLevel: "debug",
		UI: UIConfig{
			Color:     false,
			Precision: 6,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func Validate(cfg Config) error {
	if cfg.UI.Precision < 0 || cfg.UI.Precision > MaxPrecision {
		return fmt.Errorf("ui.precision must be between 0 and %d, got %d", MaxPrecision, cfg.UI.Precision)
	}
	if cfg.Debug && strings.TrimSpace(cfg.LogPath) == "" {
		return fmt.Errorf("log_path is required when debug is enabled")
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// DefaultConfigTemplate returns a commented example config file.
func DefaultConfigTemplate() string {
	return `# areacalc configuration
# Lookup order: --config flag, .areacalc/config.yaml, ~/.config/areacalc/config.yaml
# Every key can also be set through the environment, e.g. AREACALC_DEBUG=1.

# Write a debug log (never to stdout)
debug: false
log_path: debug.log
# Lowest level written to the log: debug, info, warn or error
log_level: debug

ui:
  # Style banner, result header and diagnostics
  color: false
  # Digits after the decimal point in "Area:" lines (0-12)
  precision: 6
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist. Refuses to overwrite an existing file.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
