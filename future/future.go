// Package future implements the operation future (C4): the state machine
// that ties a submitted descriptor to its control block, resumes on
// completion, and tears down — including cancellation of a still-pending
// operation — the way original_source/src/io_port/future.rs's poll does,
// adapted from callback-driven Future::poll to an explicit blocking Await
// plus a non-blocking Poll primitive a scheduler can drive directly.
package future

import (
	"context"
	"errors"
	"sync"

	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

// ErrCancelled names a cancelled operation. No code path in this package
// returns it: Await reports ctx.Err() when its context ends, and Poll on a
// future cancelled while pending reports not-ready with a nil error.
var ErrCancelled = errors.New("future: operation cancelled")

type state int32

const (
	notSubmitted state = iota
	pending
	finished
	cancelling
)

// chanWaker is cblock.Waker backed by a channel, closed at most once.
type chanWaker struct {
	ch   chan struct{}
	once sync.Once
}

func newChanWaker() *chanWaker { return &chanWaker{ch: make(chan struct{})} }

func (w *chanWaker) Wake() { w.once.Do(func() { close(w.ch) }) }

// Future drives a single op.Descriptor through submission, optional
// suspension, and completion. One Future is good for exactly one
// operation (§4.4's "exactly one submit call per operation").
type Future[B any, O any] struct {
	handle plat.Handle
	port   *port.Port
	desc   op.Descriptor[B, O]

	mu    sync.Mutex
	state state
	cb    *cblock.ControlBlock
	waker *chanWaker
}

// New constructs a not-yet-submitted future for desc against handle,
// which must already be attached to port (§4.5).
func New[B any, O any](handle plat.Handle, p *port.Port, desc op.Descriptor[B, O]) *Future[B, O] {
	return &Future[B, O]{handle: handle, port: p, desc: desc, state: notSubmitted}
}

// Poll runs one non-blocking step of the state machine. ready is true once
// a terminal outcome (success or error) is available in o, b, err.
func (f *Future[B, O]) Poll() (ready bool, o O, b B, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case finished:
		var zeroO O
		var zeroB B
		return true, zeroO, zeroB, errors.New("future: already resolved")

	case notSubmitted:
		f.cb = cblock.New()
		f.waker = newChanWaker()
		f.cb.SetWaker(f.waker)
		cblock.Register(f.cb)

		outcome, n, serr := f.desc.Submit(f.handle, f.cb)
		switch outcome {
		case op.CompletedSynchronously:
			f.reclaim()
			f.cb.Release()
			f.state = finished
			f.desc.OnPartial(n)
			o, b = f.desc.Finalize(n, nil)
			return true, o, b, nil
		case op.SubmissionFailed:
			f.reclaim()
			f.cb.Release()
			f.state = finished
			o, b = f.desc.Finalize(0, serr)
			return true, o, b, serr
		default: // StartedPending
			f.state = pending
			var zeroO O
			var zeroB B
			return false, zeroO, zeroB, nil
		}

	case pending:
		select {
		case <-f.waker.ch:
		default:
			var zeroO O
			var zeroB B
			return false, zeroO, zeroB, nil
		}
		n := f.cb.Bytes()
		cerr := f.cb.TakeError()
		f.cb.Release()
		f.state = finished
		f.desc.OnPartial(n)
		o, b = f.desc.Finalize(n, cerr)
		return true, o, b, cerr

	default: // cancelling
		var zeroO O
		var zeroB B
		return false, zeroO, zeroB, nil
	}
}

// reclaim drops the kernel's logical reference for an operation that will
// never have a completion packet posted for it (it finished synchronously
// or failed synchronously, so the kernel never queued it).
func (f *Future[B, O]) reclaim() {
	cblock.Unregister(f.cb.Pointer())
	f.cb.Release()
}

// Await blocks the calling goroutine until the future resolves, driving
// Poll itself and parking on the completion port between attempts. This is
// the primitive the scheduler's park hook generalizes; callers with no
// scheduler in play (tests, the simple Run entry point) can use it
// directly.
func (f *Future[B, O]) Await(ctx context.Context) (O, B, error) {
	for {
		ready, o, b, err := f.Poll()
		if ready {
			return o, b, err
		}

		done := make(chan struct{})
		var waitErr error
		go func() {
			_, waitErr = f.port.Wait(port.INFINITE)
			close(done)
		}()

		select {
		case <-ctx.Done():
			f.Cancel()
			<-done
			var zeroO O
			var zeroB B
			return zeroO, zeroB, ctx.Err()
		case <-done:
			if waitErr != nil {
				var zeroO O
				var zeroB B
				return zeroO, zeroB, waitErr
			}
		}
	}
}

// Cancel issues a handle-scoped cancel for a still-pending operation and
// removes the stored waker so a spurious wake is a no-op. The kernel may
// still post a completion for the operation; the poller will consume and
// discard it along with the control block (§5's cancellation semantics).
// Cancelling a future that is not pending is a no-op.
func (f *Future[B, O]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != pending {
		return
	}
	f.cb.TakeWaker()
	_ = cancelIO(f.handle, f.cb)
	f.state = cancelling
}
