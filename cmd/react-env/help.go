package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: react-env [flags] [rootDir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite build-time placeholder tokens in static assets with runtime")
	fmt.Fprintln(w, "environment values. Run once before the asset server starts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  rootDir    Build output directory (optional if REACT_ENV_ROOT or config root is set)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection:")
	fmt.Fprintln(w, "  -p, --prefix <s>      Environment key prefix (default MY_APP_)")
	fmt.Fprintln(w, "      --delimiter <s>   Token delimiter around keys (default __, \"\" = bare keys)")
	fmt.Fprintln(w, "  -e, --ext <list>      File extensions to rewrite (default .js,.css)")
	fmt.Fprintln(w, "      --exclude <list>  Glob patterns to skip, relative to root (e.g. \"**/*.map\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	fmt.Fprintln(w, "      --strict          Fail when no environment keys match the prefix")
	fmt.Fprintln(w, "      --dry-run         Report files that would change without writing")
	fmt.Fprintln(w, "      --timeout <d>     Overall time budget (default 60s, 0 = unbounded)")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel file rewrites (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path (also REACT_ENV_CONFIG)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show injected values and timing")
	fmt.Fprintln(w, "      --version         Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  REACT_ENV_CONFIG, REACT_ENV_ROOT, REACT_ENV_PREFIX, REACT_ENV_DELIMITER,")
	fmt.Fprintln(w, "  REACT_ENV_STRICT, REACT_ENV_TIMEOUT, REACT_ENV_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 2 usage/config, 3 partial I/O failure, 4 timeout.")
}
