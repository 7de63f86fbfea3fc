// Package leaktest holds test helpers that catch goroutines and memory left
// behind by concurrent fleet operations.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// settleTimeout bounds how long Check waits for goroutines to exit
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
	stackDumpSize = 64 << 10
)

// GoroutineChecker records the goroutine count at creation and later reports
// if it stayed above that baseline.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance extra goroutines are still
// running once settleTimeout has passed. On failure all stacks are logged.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := waitForCount(g.before+tolerance, settleTimeout)
	if ok {
		return
	}

	buf := make([]byte, stackDumpSize)
	n := runtime.Stack(buf, true)
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, buf[:n])
}

// MemoryChecker reports heap growth between creation and Check
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker records the live heap after a collection
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test if the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / (1 << 20)
	if growthMB > maxGrowthMB {
		m.t.Errorf("heap grew %.2fMB (max %.2fMB): before=%d after=%d bytes",
			growthMB, maxGrowthMB, m.before, after)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and bounds the heap growth it leaves behind
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

// waitForCount polls until at most target goroutines run or timeout passes.
// Returns the last count seen and whether the target was reached.
func waitForCount(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
