// Package config loads react-env settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sanjay-arya/react-env/internal/fileutil"
	"github.com/sanjay-arya/react-env/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrInvalidWorkers  = errors.New("workers cannot be negative")
)

// Config holds all file-based settings for an injection run. Zero values
// mean "unset"; the CLI layers environment variables and flags on top and
// falls back to library defaults for anything still empty.
type Config struct {
	Root       string   `yaml:"root"`       // Asset tree to rewrite (empty = must specify)
	Prefix     string   `yaml:"prefix"`     // Env key namespace (empty = MY_APP_)
	Delimiter  *string  `yaml:"delimiter"`  // Token delimiter; nil = default "__", "" = verbatim keys
	Extensions []string `yaml:"extensions"` // File extensions to rewrite (empty = .js, .css)
	Exclude    []string `yaml:"exclude"`    // Doublestar globs, relative to root
	Strict     bool     `yaml:"strict"`     // Fail when no env keys match the prefix
	Timeout    string   `yaml:"timeout"`    // Go duration, e.g. "60s" ("" = default, "0" = unbounded)
	Workers    int      `yaml:"workers"`    // Parallel file rewrites (0 = derive from CPU count)
}

// DefaultConfig returns an all-unset configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.normalize()
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/react-env/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "react-env", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
		}
		if d < 0 {
			return fmt.Errorf("%w: %q (cannot be negative)", ErrInvalidTimeout, c.Timeout)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	for _, ext := range c.Extensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("extensions: %w", err)
		}
	}
	return nil
}

// ParsedTimeout returns the timeout as a duration, or ok=false when unset.
func (c *Config) ParsedTimeout() (d time.Duration, ok bool) {
	if c.Timeout == "" {
		return 0, false
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, false
	}
	return d, true
}

// normalize cleans up extension spelling after a successful parse.
func (c *Config) normalize() {
	for i, ext := range c.Extensions {
		c.Extensions[i] = fileutil.NormalizeExtension(ext)
	}
}
