package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the react-env command.
type cliFlags struct {
	config     string
	prefix     string
	delimiter  string
	extensions []string
	exclude    []string
	strict     bool
	dryRun     bool
	timeout    time.Duration
	workers    int
	quiet      bool
	verbose    bool
	version    bool

	// fs is kept so callers can distinguish explicitly-set flags from
	// defaults when merging with env vars and the config file.
	fs *flag.FlagSet
}

// changed reports whether the named flag was set on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// parseFlags parses command-line arguments (without the program name).
// Returns the parsed flags and the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("react-env", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs.Output()) }

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.prefix, "prefix", "p", "", "environment key prefix (default MY_APP_)")
	fs.StringVar(&f.delimiter, "delimiter", "", "token delimiter around keys (default __, \"\" = bare keys)")
	fs.StringSliceVarP(&f.extensions, "ext", "e", nil, "file extensions to rewrite (default .js,.css)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "glob patterns to skip, relative to root")
	fs.BoolVar(&f.strict, "strict", false, "fail when no environment keys match the prefix")
	fs.BoolVar(&f.dryRun, "dry-run", false, "report files that would change without writing")
	fs.DurationVar(&f.timeout, "timeout", defaultTimeout, "overall time budget (0 = unbounded)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel file rewrites (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show values and timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.fs = fs
	return f, fs.Args(), nil
}
