// Package leaktest provides goroutine-leak checks for tests of
// components that own background goroutines (worker pool, scheduler,
// ledger store).
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay   = 10 * time.Millisecond
	checkDeadline = 2 * time.Second
	pollInterval  = 20 * time.Millisecond
)

// GoroutineChecker records the goroutine count at construction and
// compares against it after the component under test shuts down.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines from earlier tests wind down first.
	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if the goroutine count stays above the baseline
// plus tolerance. Shutdown is asynchronous, so the count is polled until
// it settles or the deadline passes. Runtime-owned goroutines
// (finalizers, timer wheels) come and go, which is what the tolerance
// is for.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	runtime.GC()

	deadline := time.Now().Add(checkDeadline)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
				g.before, after, after-g.before, tolerance)
			return
		}
		time.Sleep(pollInterval)
	}
}
