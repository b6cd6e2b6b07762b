package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sanjay-arya/react-env/internal/config"
)

// envConfig holds configuration from REACT_ENV_* environment variables.
// Provides entrypoint-friendly overrides without flag plumbing in Dockerfiles.
// These are the tool's own settings; they are unrelated to the namespaced
// variables (MY_APP_* by default) whose values get injected.
type envConfig struct {
	ConfigPath string        // REACT_ENV_CONFIG: config file name or path
	Root       string        // REACT_ENV_ROOT: asset tree to rewrite
	Prefix     string        // REACT_ENV_PREFIX: injected key namespace
	Delimiter  *string       // REACT_ENV_DELIMITER: token delimiter (set-but-empty = bare keys)
	Strict     *bool         // REACT_ENV_STRICT: true/1 fails on an empty substitution set
	Timeout    time.Duration // REACT_ENV_TIMEOUT: overall time budget
	Workers    int           // REACT_ENV_WORKERS: parallel file rewrites
}

// knownEnvVars lists valid REACT_ENV_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REACT_ENV_CONFIG":    true,
	"REACT_ENV_ROOT":      true,
	"REACT_ENV_PREFIX":    true,
	"REACT_ENV_DELIMITER": true,
	"REACT_ENV_STRICT":    true,
	"REACT_ENV_TIMEOUT":   true,
	"REACT_ENV_WORKERS":   true,
}

// loadEnvConfig reads the tool's own settings from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("REACT_ENV_CONFIG"),
		Root:       os.Getenv("REACT_ENV_ROOT"),
		Prefix:     os.Getenv("REACT_ENV_PREFIX"),
	}

	// LookupEnv: an explicitly empty delimiter means bare keys, which is
	// different from the variable being unset.
	if delim, ok := os.LookupEnv("REACT_ENV_DELIMITER"); ok {
		cfg.Delimiter = &delim
	}

	if strict := os.Getenv("REACT_ENV_STRICT"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			cfg.Strict = &b
		}
	}

	if timeout := os.Getenv("REACT_ENV_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d >= 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("REACT_ENV_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized REACT_ENV_* variables.
// Helps catch typos like REACT_ENV_PREFX instead of REACT_ENV_PREFIX.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "REACT_ENV_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment variable values onto the file config.
// Env vars beat the config file; CLI flags beat both and are applied later
// via mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Root = env.Root
	}
	if env.Prefix != "" {
		cfg.Prefix = env.Prefix
	}
	if env.Delimiter != nil {
		cfg.Delimiter = env.Delimiter
	}
	if env.Strict != nil {
		cfg.Strict = *env.Strict
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
