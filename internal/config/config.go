// Package config provides centralized configuration management for the
// label generator. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Output   OutputConfig
	Generate GenerateConfig
	Logging  LoggingConfig
}

// OutputConfig holds settings for the generated PDF artifact.
type OutputConfig struct {
	// Dir is the directory the finished PDF is written to (default: .)
	Dir string `env:"OUTPUT_DIR" default:"."`
}

// GenerateConfig holds batch generation settings.
type GenerateConfig struct {
	// AllowPartial saves the document even when some rows failed.
	// The default keeps the fail-safe behavior: one bad row withholds
	// the whole PDF so an operator never prints an incomplete stack.
	AllowPartial bool `env:"GENERATE_ALLOW_PARTIAL" default:"false"`

	// BarcodeScale is the pixel width of one barcode module (default: 3)
	BarcodeScale int `env:"BARCODE_SCALE" default:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Output.Dir) == "" {
		errs = append(errs, "OUTPUT_DIR must not be empty")
	}

	if c.Generate.BarcodeScale < 1 || c.Generate.BarcodeScale > 10 {
		errs = append(errs, fmt.Sprintf("BARCODE_SCALE (%d) must be 1-10", c.Generate.BarcodeScale))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a string representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Dir: %q}, Generate: {AllowPartial: %v, BarcodeScale: %d}, Logging: {Level: %q, Format: %q}}",
		c.Output.Dir, c.Generate.AllowPartial, c.Generate.BarcodeScale,
		c.Logging.Level, c.Logging.Format)
}
