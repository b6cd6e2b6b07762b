package main

import (
	"errors"

	reactenv "github.com/sanjay-arya/react-env"
	"github.com/sanjay-arya/react-env/internal/config"
)

// Exit codes for the react-env CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All placeholders injected (or nothing to do)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or substitution set
	ExitIO      = 3 // One or more files could not be patched
	ExitTimeout = 4 // Run exceeded its time budget
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Timeout (exit 4)
	if errors.Is(err, reactenv.ErrTimeout) {
		return ExitTimeout
	}

	// Partial I/O failure (exit 3)
	if errors.Is(err, ErrPartial) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, reactenv.ErrRootNotFound) ||
		errors.Is(err, reactenv.ErrRootNotDir) ||
		errors.Is(err, reactenv.ErrNoSubstitutions) ||
		errors.Is(err, reactenv.ErrKeyCollision) ||
		errors.Is(err, reactenv.ErrBadPattern) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, ErrNoRoot) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
