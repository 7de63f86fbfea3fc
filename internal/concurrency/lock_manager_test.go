package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scavenger_Go/internal/testing/leaktest"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("Ada"), lm.GetLock("Ada"))
	assert.NotSame(t, lm.GetLock("Ada"), lm.GetLock("Bo"))
}

func TestLockManager_LockKeysDeduplicates(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.LockKeys("Ada", "Ada")
	unlock()

	// would block forever if the mutex were still held
	assert.True(t, lm.GetLock("Ada").TryLock())
}

func TestLockManager_OppositeOrderDoesNotDeadlock(t *testing.T) {
	lm := NewLockManager()
	checker := leaktest.NewGoroutineChecker(t)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := lm.LockKeys("Ada", "Bo")
			counter++
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := lm.LockKeys("Bo", "Ada")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	checker.Check(0)
}
