// Package config loads the ambient settings shared by every demo program.
// Values come from environment variables (optionally seeded from a .env
// file) and are validated on startup so a bad setting fails fast.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
	Display DisplayConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DisplayConfig controls console styling.
type DisplayConfig struct {
	// Color is the colour mode: auto, always, never (default: auto)
	Color string `env:"DISPLAY_COLOR" envAlt:"COLOR_MODE" default:"auto"`

	// SetTitle sets the terminal window title while a styled program runs (default: true)
	SetTitle bool `env:"DISPLAY_SET_TITLE" default:"true"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Display.Color)] {
		errs = append(errs, fmt.Sprintf("DISPLAY_COLOR (%q) must be one of: auto, always, never", c.Display.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Logging: {Level: %q, Format: %q}, Display: {Color: %q, SetTitle: %v}}",
		c.Logging.Level, c.Logging.Format, c.Display.Color, c.Display.SetTitle)
}
