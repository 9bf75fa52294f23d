// Package scheduler provides the single-threaded cooperative host the
// runtime's futures are driven under: one completion port, one park hook,
// tasks confined to the thread that spawned them. Grounded on the pinned
// OS-thread "ioLoop" in the teacher's internal/queue/runner.go — pin the
// thread, loop on ctx.Done() vs. outstanding work, one drain call per
// iteration — generalized from a single fixed I/O loop into a reusable
// SpawnLocal/BlockOn host.
//
// Go already gives every goroutine its own cheap, GC-managed stack, so
// unlike the Rust executor this scheduler doesn't need a hand-rolled
// per-task continuation: SpawnLocal launches each unit of work on its own
// goroutine, and the "single OS thread" guarantee applies only to BlockOn's
// park loop, which runs on the pinned thread. The completion port is not
// waited on from that loop alone: future.Await also waits on it from a
// goroutine of its own.
package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ParkHook is invoked once per park; it should perform at most one
// blocking or non-blocking dequeue and report whether a packet was
// handled. The runtime wires this to an internal/port.Port's Wait/Poll.
type ParkHook func() (handled bool, err error)

// Scheduler tracks outstanding spawned work and owns the park hook the
// host runtime configures at construction (runtime.go).
type Scheduler struct {
	mu   sync.Mutex
	hook ParkHook

	outstanding atomic.Int64
	wake        chan struct{}
}

// New returns a scheduler with no park hook configured; SetParkHook must
// be called before BlockOn is used with any task that suspends.
func New() *Scheduler {
	return &Scheduler{wake: make(chan struct{}, 1)}
}

// SetParkHook installs the function BlockOn calls while it has no
// immediately runnable work. Passing nil restores the no-op default,
// useful in tests that never suspend.
func (s *Scheduler) SetParkHook(hook ParkHook) {
	s.mu.Lock()
	s.hook = hook
	s.mu.Unlock()
}

// SpawnLocal schedules task to run on its own goroutine, confined to this
// scheduler: tasks must not be handed to another scheduler or outlive the
// BlockOn call that's driving this one (the Go analogue of the original
// executor's "non-Send" task constraint, documented rather than enforced
// — Go has no type-level send-ness to check it against).
func (s *Scheduler) SpawnLocal(task func()) {
	s.outstanding.Add(1)
	go func() {
		defer s.taskDone()
		task()
	}()
}

func (s *Scheduler) taskDone() {
	if s.outstanding.Add(-1) == 0 {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// BlockOn pins the calling goroutine to its OS thread, spawns task, and
// parks until task and everything it transitively spawned has finished.
// Parking calls the configured hook, which is expected to block (e.g. a
// completion port Wait with an infinite timeout) rather than spin —
// BlockOn does not poll in a tight loop.
func (s *Scheduler) BlockOn(task func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s.SpawnLocal(task)

	for s.outstanding.Load() > 0 {
		hook := s.currentHook()
		if hook == nil {
			<-s.wake
			continue
		}

		// Run the (possibly blocking) hook on its own goroutine so a
		// task finishing with no further I/O pending can still unblock
		// this loop via wake, instead of waiting for one more
		// completion packet that may never arrive. If the hook really
		// is blocked in a kernel wait, that goroutine is abandoned here
		// and resolves on its own once the port sees another packet or
		// is closed.
		hookDone := make(chan struct{})
		go func() {
			hook()
			close(hookDone)
		}()

		select {
		case <-hookDone:
		case <-s.wake:
		}
	}

	// Drain a leftover wake signal so a subsequent BlockOn call on the
	// same scheduler doesn't see a stale wakeup.
	select {
	case <-s.wake:
	default:
	}
}

func (s *Scheduler) currentHook() ParkHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hook
}

// Outstanding reports the number of spawned tasks that have not yet
// returned; used by tests and by diagnostics.
func (s *Scheduler) Outstanding() int64 {
	return s.outstanding.Load()
}
