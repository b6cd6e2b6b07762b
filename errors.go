package reactenv

import "errors"

// Sentinel errors for injection runs.
var (
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root path is not a directory")

	// ErrNoSubstitutions is returned under Options.Strict when no environment
	// key matches the prefix. Without Strict an empty set is a successful
	// no-op run.
	ErrNoSubstitutions = errors.New("no environment variables match prefix")

	// ErrKeyCollision is returned when one substitution key is a substring of
	// another. Such a set could rewrite one token inside another, so the run
	// is rejected before any file is touched.
	ErrKeyCollision = errors.New("substitution key is a substring of another key")

	// ErrBadPattern is returned for a malformed exclude glob.
	ErrBadPattern = errors.New("invalid exclude pattern")

	// ErrTimeout is returned when the run's context deadline fires mid-pass.
	ErrTimeout = errors.New("injection run exceeded time budget")
)
