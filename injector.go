package reactenv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sanjay-arya/react-env/internal/fileutil"
)

// Inject performs one injection run over the asset tree rooted at rootDir.
//
// The environment snapshot is taken by the caller (normally os.Environ()) and
// treated as immutable for the whole run. Configuration errors (missing
// root, empty substitution set under Strict, colliding keys, malformed
// exclude patterns) abort before any file is touched. Per-file I/O errors
// do not: the failing file is recorded in Result.Failures and the run moves
// on, so one unreadable file cannot leave the rest of the tree unpatched.
//
// The context bounds the run; a deadline firing mid-pass surfaces as
// ErrTimeout together with the partial Result accumulated so far.
func Inject(ctx context.Context, rootDir string, environ []string, opts Options) (Result, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(rootDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrRootNotFound, rootDir)
		}
		return Result{}, fmt.Errorf("stat %s: %w", rootDir, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrRootNotDir, rootDir)
	}

	subs := deriveSubstitutions(environ, opts.Prefix, opts.Delimiter)
	if len(subs) == 0 {
		if opts.Strict {
			return Result{}, fmt.Errorf("%w: %s", ErrNoSubstitutions, opts.Prefix)
		}
		opts.logf("no %s* variables set, nothing to inject", opts.Prefix)
		return Result{}, nil
	}
	if err := validateKeys(subs); err != nil {
		return Result{}, err
	}

	paths, err := enumerateAssets(rootDir, opts.Extensions, opts.Exclude)
	if err != nil {
		return Result{}, err
	}

	result := Result{Keys: make([]string, len(subs))}
	for i, sub := range subs {
		result.Keys[i] = sub.key
		opts.logf("injecting %s", sub.key)
	}

	if opts.Workers > 1 {
		rewriteParallel(ctx, rootDir, paths, subs, opts, &result)
	} else {
		rewriteSequential(ctx, rootDir, paths, subs, opts, &result)
	}

	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, fmt.Errorf("%w after %d/%d files", ErrTimeout, result.FilesScanned, len(paths))
		}
		return result, err
	}
	return result, nil
}

// rewriteSequential processes files one at a time in sorted order.
func rewriteSequential(ctx context.Context, root string, paths []string, subs []substitution, opts Options, result *Result) {
	for _, rel := range paths {
		if ctx.Err() != nil {
			return
		}
		result.FilesScanned++
		modified, err := rewriteFile(root, rel, subs, opts)
		if err != nil {
			opts.logf("skipping %s: %v", rel, err)
			result.Failures = append(result.Failures, FileFailure{Path: rel, Err: err})
			continue
		}
		if modified {
			if opts.DryRun {
				opts.logf("would rewrite %s", rel)
			}
			result.FilesModified++
		}
	}
}

// rewriteParallel fans paths out to opts.Workers goroutines. Files share no
// state, so the only coordination is the results mutex.
func rewriteParallel(ctx context.Context, root string, paths []string, subs []substitution, opts Options, result *Result) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		queue = make(chan string)
	)

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range queue {
				modified, err := rewriteFile(root, rel, subs, opts)
				// Logf is only ever called with mu held, so callers get a
				// serialized record stream even under parallel rewrites.
				mu.Lock()
				result.FilesScanned++
				if err != nil {
					opts.logf("skipping %s: %v", rel, err)
					result.Failures = append(result.Failures, FileFailure{Path: rel, Err: err})
				} else if modified {
					if opts.DryRun {
						opts.logf("would rewrite %s", rel)
					}
					result.FilesModified++
				}
				mu.Unlock()
			}
		}()
	}

	for _, rel := range paths {
		if ctx.Err() != nil {
			break
		}
		queue <- rel
	}
	close(queue)
	wg.Wait()
}

// rewriteFile applies the substitution set to one file. The write only
// happens when at least one token matched, keeping contents and modification
// times of untouched files exactly as the build produced them. Writes go
// through an atomic replace so a concurrent reader never observes a
// half-written asset.
func rewriteFile(root, rel string, subs []substitution, opts Options) (bool, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	buf, err := os.ReadFile(path) // #nosec G304 -- path comes from walking the caller's root
	if err != nil {
		return false, err
	}

	out, changed := apply(buf, subs)
	if !changed {
		return false, nil
	}
	if opts.DryRun {
		return true, nil
	}
	if err := fileutil.ReplaceFile(path, out, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
