package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/scheduler"
)

func TestBlockOnRunsTaskToCompletionWithNoParkHook(t *testing.T) {
	s := scheduler.New()
	var ran atomic.Bool

	s.BlockOn(func() { ran.Store(true) })

	assert.True(t, ran.Load())
	assert.Zero(t, s.Outstanding())
}

func TestSpawnLocalInsideTaskIsAwaitedByBlockOn(t *testing.T) {
	s := scheduler.New()
	var both atomic.Int32

	s.BlockOn(func() {
		both.Add(1)
		done := make(chan struct{})
		s.SpawnLocal(func() {
			both.Add(1)
			close(done)
		})
		<-done
	})

	assert.EqualValues(t, 2, both.Load())
	assert.Zero(t, s.Outstanding())
}

func TestBlockOnReturnsWithoutWaitingOnBlockedParkHook(t *testing.T) {
	s := scheduler.New()
	var hookCalls atomic.Int32
	unblock := make(chan struct{})

	s.SetParkHook(func() (bool, error) {
		hookCalls.Add(1)
		<-unblock
		return true, nil
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(unblock)
	}()

	s.BlockOn(func() {
		// Task itself finishes immediately; BlockOn's wake channel
		// should unblock the loop without waiting on the abandoned
		// hook goroutine.
	})

	assert.Zero(t, s.Outstanding())
}
