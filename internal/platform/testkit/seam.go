package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Swap replaces *target for the rest of the test
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Serial holds a process-wide lock until the test ends; take it before swapping
// a package-level seam
func Serial(t testing.TB) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
