// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Taxpayer info
	Name         string `json:"name,omitempty"`          // Taxpayer full name
	SSN          string `json:"ssn,omitempty"`           // Social security number
	Address      string `json:"address,omitempty"`       // Mailing address
	FilingStatus string `json:"filing_status,omitempty"` // Single, Married Filing Jointly, ...

	// Behavior
	APIKey      string `json:"api_key,omitempty"`     // Gemini API key; empty disables model fallback
	Verbose     bool   `json:"verbose,omitempty"`     // Print detailed debug information
	Concurrency int    `json:"concurrency,omitempty"` // Parallel document extractions

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for serve mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.SSN == "" {
		result.SSN = defaults.SSN
	}
	if result.Address == "" {
		result.Address = defaults.Address
	}
	if result.FilingStatus == "" {
		result.FilingStatus = defaults.FilingStatus
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
