// Package config handles configuration loading from TOML files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
)

// Config is the root configuration structure.
type Config struct {
	// TabSize is the number of spaces the Tab command inserts.
	TabSize int `toml:"tab_size"`
	// PageOverlap is subtracted from the viewport height to get the
	// PageUp/PageDown displacement. 0 pages by the full height.
	PageOverlap int `toml:"page_overlap"`
	// Watch reloads a clean buffer when the file changes on disk.
	Watch bool `toml:"watch"`

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	UI UIConfig `toml:"ui"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// EmptyRowMarker is drawn on screen rows below the last line.
	EmptyRowMarker string `toml:"empty_row_marker"`
	// ShowStatus reserves the bottom row for the status line.
	ShowStatus bool `toml:"show_status"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabSize:  4,
		Watch:    true,
		LogLevel: "info",
		UI: UIConfig{
			EmptyRowMarker: "~",
			ShowStatus:     true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quill/config.toml, falling back to
// ~/.config/quill/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quill", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "config.toml")
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path means DefaultPath; a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.TabSize < 1 || c.TabSize > 16 {
		errs = append(errs, fmt.Errorf("tab_size=%d must be between 1 and 16", c.TabSize))
	}
	if c.PageOverlap < 0 {
		errs = append(errs, fmt.Errorf("page_overlap=%d must not be negative", c.PageOverlap))
	}
	if w := ansi.StringWidth(c.UI.EmptyRowMarker); w != 1 {
		errs = append(errs, fmt.Errorf("ui.empty_row_marker=%q must be one cell wide, got %d", c.UI.EmptyRowMarker, w))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level=%q: %w", c.LogLevel, err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("QUILL_TAB_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("QUILL_TAB_SIZE=%q: %w", v, err)
		}
		cfg.TabSize = n
	}
	if v := os.Getenv("QUILL_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("QUILL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
