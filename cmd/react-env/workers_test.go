package main

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(3); got != 3 {
		t.Errorf("resolveWorkers(3) = %d, want 3", got)
	}
	if got := resolveWorkers(16); got != 16 {
		t.Errorf("resolveWorkers(16) = %d, want explicit values taken as-is", got)
	}

	auto := resolveWorkers(0)
	if auto < minWorkers || auto > maxWorkers {
		t.Errorf("resolveWorkers(0) = %d, want within [%d, %d]", auto, minWorkers, maxWorkers)
	}
	if procs := runtime.GOMAXPROCS(0); procs <= maxWorkers && auto != procs {
		t.Errorf("resolveWorkers(0) = %d, want GOMAXPROCS (%d)", auto, procs)
	}
}
