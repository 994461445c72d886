// Package config provides configuration loading and validation for the
// CLI and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents configuration that can be loaded from a JSON file and
// overridden by environment variables. All fields are optional; missing
// values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // Address for the HTTP server (default :8080)

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose          bool `json:"verbose,omitempty"`            // Print detailed debug information
	EnforceWeightSum bool `json:"enforce_weight_sum,omitempty"` // Require criterion weights to sum to 100
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

// FromEnv builds a Config from environment variables alone. File values
// (if any) should be merged first; env values win.
func FromEnv() Config {
	return Config{
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Verbose:          envBool("VERBOSE"),
		EnforceWeightSum: envBool("ENFORCE_WEIGHT_SUM"),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.ListenAddr == "" {
		result.ListenAddr = ":8080"
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so flags and env
	// only ever turn them on.
	result.Verbose = result.Verbose || defaults.Verbose
	result.EnforceWeightSum = result.EnforceWeightSum || defaults.EnforceWeightSum

	return result
}

// envInt reads an integer environment variable, falling back to def when
// unset. An unparseable value is an error rather than a silent default.
func envInt(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

// envBool treats any of 1/true/yes (case as written) as true.
func envBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}
