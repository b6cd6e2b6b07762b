package main

import "runtime"

// Worker sizing constants.
const (
	// minWorkers ensures at least one file is processed at a time.
	minWorkers = 1

	// maxWorkers caps concurrent rewrites; the pass is I/O bound and more
	// goroutines just contend on the disk.
	maxWorkers = 8
)

// resolveWorkers returns the worker count to use. Explicit values are taken
// as-is; zero derives from the CPU count (automaxprocs has already clamped
// GOMAXPROCS to the container's quota by the time this runs).
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	w := runtime.GOMAXPROCS(0)
	if w < minWorkers {
		return minWorkers
	}
	if w > maxWorkers {
		return maxWorkers
	}
	return w
}
