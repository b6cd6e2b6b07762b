package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	reactenv "github.com/sanjay-arya/react-env"
	"github.com/sanjay-arya/react-env/internal/config"
	"github.com/sanjay-arya/react-env/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoRoot      = errors.New("no root directory given (argument, REACT_ENV_ROOT, or config root)")
	ErrTooManyArgs = errors.New("expected at most one argument")

	// ErrPartial marks a run that finished but could not patch every file.
	// The orchestration layer decides whether a partially patched tree is
	// acceptable; the non-zero exit makes sure it has to decide.
	ErrPartial = errors.New("some files could not be patched")
)

// defaultTimeout bounds a run so a wedged injection fails container
// readiness instead of hanging the entrypoint.
const defaultTimeout = 60 * time.Second

// localConfigName is probed in the working directory when neither --config
// nor REACT_ENV_CONFIG is set.
const localConfigName = ".react-env"

// run executes one injection pass: resolve configuration across the three
// tiers (flags > env vars > config file), snapshot the environment, inject,
// report.
func run(flags *cliFlags, args []string, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w, got %d", ErrTooManyArgs, len(args))
	}

	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	envCfg := loadEnvConfig()
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	root := cfg.Root
	if len(args) == 1 {
		root = args[0]
	}
	if root == "" {
		return ErrNoRoot
	}

	environ := env.Environ()
	opts := buildOptions(flags, cfg, env)

	ctx, stop := notifyContext(context.Background())
	defer stop()
	if timeout := resolveTimeout(flags, envCfg, cfg); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if flags.verbose {
		dumpSubstitutionEnv(env, environ, cfg.Prefix)
	}

	start := env.Now()
	result, err := reactenv.Inject(ctx, root, environ, opts)
	if err != nil {
		return err
	}

	if !flags.quiet {
		verb := "patched"
		if flags.dryRun {
			verb = "would patch"
		}
		fmt.Fprintf(env.Stdout, "react-env: %d variables, %s %d of %d files\n",
			len(result.Keys), verb, result.FilesModified, result.FilesScanned)
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "elapsed: %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if !result.OK() {
		// Quiet mode drops the record stream but never error reporting; the
		// non-quiet stream already announced each failure as it happened.
		if flags.quiet {
			for _, f := range result.Failures {
				fmt.Fprintf(env.Stderr, "react-env: %s: %v\n", f.Path, f.Err)
			}
		}
		return fmt.Errorf("%w: %d of %d files failed", ErrPartial, len(result.Failures), result.FilesScanned)
	}
	return nil
}

// resolveConfig loads the config file tier. Explicitly named configs
// (--config or REACT_ENV_CONFIG) must exist; the local .react-env.yaml is a
// silent convenience and only loads when present.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	for _, ext := range []string{".yaml", ".yml"} {
		if fileutil.FileExists(localConfigName + ext) {
			return config.LoadConfig(localConfigName + ext)
		}
	}
	return config.DefaultConfig(), nil
}

// mergeFlags overlays explicitly-set command-line flags onto the config.
// Flags are the highest-precedence tier.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.changed("prefix") {
		cfg.Prefix = flags.prefix
	}
	if flags.changed("delimiter") {
		delim := flags.delimiter
		cfg.Delimiter = &delim
	}
	if flags.changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if flags.changed("exclude") {
		cfg.Exclude = flags.exclude
	}
	if flags.changed("strict") {
		cfg.Strict = flags.strict
	}
	if flags.changed("workers") {
		cfg.Workers = flags.workers
	}
}

// buildOptions turns the merged config into injector options.
func buildOptions(flags *cliFlags, cfg *config.Config, env *Environment) reactenv.Options {
	opts := reactenv.Options{
		Prefix:     cfg.Prefix,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
		Strict:     cfg.Strict,
		DryRun:     flags.dryRun,
		Workers:    resolveWorkers(cfg.Workers),
	}
	if cfg.Delimiter != nil {
		if *cfg.Delimiter == "" {
			opts = opts.WithVerbatimTokens()
		} else {
			opts.Delimiter = *cfg.Delimiter
		}
	}
	if !flags.quiet {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	return opts
}

// resolveTimeout picks the run's time budget: flag > env var > config file >
// default. Zero disables the budget.
func resolveTimeout(flags *cliFlags, envCfg *envConfig, cfg *config.Config) time.Duration {
	if flags.changed("timeout") {
		return flags.timeout
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout
	}
	if d, ok := cfg.ParsedTimeout(); ok {
		return d
	}
	return defaultTimeout
}

// dumpSubstitutionEnv prints the matching KEY=value pairs. Values appear in
// logs only under --verbose; the default record stream is key-only.
func dumpSubstitutionEnv(env *Environment, environ []string, prefix string) {
	if prefix == "" {
		prefix = reactenv.DefaultPrefix
	}
	for _, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			fmt.Fprintln(env.Stderr, entry)
		}
	}
}
