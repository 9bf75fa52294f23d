//go:build windows

// Package port implements the completion port and poller (C5): the kernel
// object completions are posted to, and the non-blocking dequeue loop the
// scheduler's park hook drives.
package port

import (
	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

// INFINITE mirrors the Win32 constant for a GetQueuedCompletionStatus call
// that blocks until a packet is ready.
const INFINITE = windows.INFINITE

// Port owns a single completion port handle. A runtime creates exactly
// one per scheduler thread; every resource it drives attaches to it once,
// at construction.
type Port struct {
	handle windows.Handle
}

// New creates a fresh completion port not yet associated with any handle.
func New() (*Port, error) {
	h, err := windows.CreateIoCompletionPort(windows.InvalidHandle, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Port{handle: h}, nil
}

// Handle returns the raw completion port handle, e.g. for diagnostics.
func (p *Port) Handle() plat.Handle { return p.handle }

// Attach associates an already-open resource handle with this port. It
// must be called exactly once per resource, before the resource's first
// overlapped submission; after that, every completion on the handle is
// posted to this port.
func (p *Port) Attach(h plat.Handle) error {
	_, err := windows.CreateIoCompletionPort(h, p.handle, 0, 0)
	return err
}

// Close releases the port handle. Any operation still in flight against a
// handle attached to it will fail its next overlapped call.
func (p *Port) Close() error {
	return windows.CloseHandle(p.handle)
}

// Poll performs one non-blocking dequeue (zero timeout) and, if a packet
// was ready, reconstructs its control block, stores any per-packet error,
// and wakes the stored waker. It reports whether a packet was handled.
func (p *Port) Poll() (handled bool, err error) {
	return p.poll(0)
}

// Wait blocks until either a completion packet arrives or timeoutMs
// elapses (INFINITE to block indefinitely). Used by the scheduler's
// BlockOn when it has no other runnable work, so the park loop sleeps
// instead of spinning on a zero-timeout poll.
func (p *Port) Wait(timeoutMs uint32) (handled bool, err error) {
	return p.poll(timeoutMs)
}

func (p *Port) poll(timeoutMs uint32) (handled bool, err error) {
	var bytes uint32
	var key uintptr
	var overlapped *windows.Overlapped

	waitErr := windows.GetQueuedCompletionStatus(p.handle, &bytes, &key, &overlapped, timeoutMs)

	if overlapped == nil {
		if waitErr == windows.WAIT_TIMEOUT {
			return false, nil
		}
		return false, waitErr
	}

	cb := cblock.FromOverlapped(overlapped)
	cblock.Unregister(cb.Pointer())

	cb.SetBytes(bytes)
	if waitErr != nil && waitErr != windows.ERROR_HANDLE_EOF {
		cb.SetError(waitErr)
	}

	if w := cb.TakeWaker(); w != nil {
		w.Wake()
	}
	cb.Release()
	return true, nil
}
