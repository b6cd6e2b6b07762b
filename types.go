package reactenv

// Defaults applied by Options.withDefaults.
const (
	// DefaultPrefix selects the environment keys that participate in a run.
	DefaultPrefix = "MY_APP_"

	// DefaultDelimiter wraps a key on both sides to form its placeholder
	// token: MY_APP_TITLE -> __MY_APP_TITLE__.
	DefaultDelimiter = "__"
)

// DefaultExtensions lists the file extensions rewritten when Options leaves
// Extensions empty. HTML and source maps are excluded on purpose: patching
// the document shell or a map risks corrupting content the build tooling
// still cross-references.
func DefaultExtensions() []string {
	return []string{".js", ".css"}
}

// Options configures one injection run.
type Options struct {
	// Prefix selects participating environment keys. Default "MY_APP_".
	Prefix string

	// Delimiter wraps the key on both sides to form the placeholder token.
	// Default "__". An empty delimiter is valid and makes the token the key
	// itself; set delimiterSet when choosing that explicitly.
	Delimiter string

	// Extensions restricts which files are rewritten. Entries are matched
	// case-insensitively and may omit the leading dot. Default {.js, .css}.
	Extensions []string

	// Exclude holds doublestar glob patterns matched against each file's
	// slash-separated path relative to the root. Matching files are skipped.
	Exclude []string

	// Strict makes an empty substitution set an error instead of a no-op.
	Strict bool

	// DryRun reports which files would change without writing anything.
	DryRun bool

	// Workers bounds concurrent per-file rewrites. Values below 2 mean
	// sequential processing.
	Workers int

	// Logf receives one replacement record per substitution key plus
	// per-file skip notices. Nil discards them. Records never include the
	// replacement value.
	Logf func(format string, args ...any)

	// delimiterSet distinguishes an explicit empty Delimiter from an unset
	// one. Callers use WithVerbatimTokens; the zero value keeps the default.
	delimiterSet bool
}

// WithVerbatimTokens returns a copy of o whose placeholder tokens are the
// environment keys themselves, with no surrounding delimiter.
func (o Options) WithVerbatimTokens() Options {
	o.Delimiter = ""
	o.delimiterSet = true
	return o
}

// withDefaults fills unset fields. Does not mutate the receiver's slices.
func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Delimiter == "" && !o.delimiterSet {
		o.Delimiter = DefaultDelimiter
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions()
	}
	return o
}

// logf forwards to Logf when set.
func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// FileFailure records a single asset file that could not be read or written.
// The run continues past it; callers decide whether a partially patched tree
// is acceptable.
type FileFailure struct {
	Path string // path relative to the root directory
	Err  error
}

// Result summarizes one injection run.
type Result struct {
	// Keys holds the substitution keys that were applied, sorted. One
	// replacement record is emitted per key regardless of match count.
	Keys []string

	// FilesScanned counts files that matched the extension and exclude
	// filters and were read.
	FilesScanned int

	// FilesModified counts files rewritten (or, under DryRun, files that
	// would have been rewritten).
	FilesModified int

	// Failures lists per-file I/O errors, sorted by path.
	Failures []FileFailure
}

// OK reports whether the run completed without any per-file failure.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}
