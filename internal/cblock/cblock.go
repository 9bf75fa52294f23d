// Package cblock implements the completion core's control block (C3): a
// heap-allocated, never-moved record whose first field is the platform
// overlapped header, so a pointer to the block doubles as the pointer the
// kernel writes through and hands back in every completion packet.
package cblock

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Waker is the minimal capability the scheduler exposes to resume a
// parked task once its operation completes.
type Waker interface {
	Wake()
}

// ControlBlock is shared by exactly two holders: the awaiting future and
// a logical reference owned by the kernel for as long as the operation is
// in flight. The kernel's share is reclaimed when the poller dequeues the
// completion packet; the future's share is dropped when the future
// resolves or is cancelled and drained.
type ControlBlock struct {
	// Overlapped must stay the first field: GetQueuedCompletionStatus
	// returns this exact address, and FromOverlapped recovers the
	// enclosing *ControlBlock from it.
	Overlapped overlapped

	mu    sync.Mutex
	waker Waker
	err   error
	bytes uint32
	refs  atomic.Int32
}

// New allocates a zero-initialized control block with its refcount at 2,
// one for the future and one for the kernel's eventual completion.
func New() *ControlBlock {
	cb := &ControlBlock{}
	cb.refs.Store(2)
	return cb
}

// OverlappedPointer returns the kernel-facing overlapped header pointer to
// pass into ReadFile/WriteFile/WSASend/... as the OVERLAPPED argument.
func (cb *ControlBlock) OverlappedPointer() *overlapped {
	return &cb.Overlapped
}

// Pointer returns the raw address used as the registry key in
// Register/Unregister and as the value recovered on dequeue.
func (cb *ControlBlock) Pointer() uintptr {
	return uintptr(unsafe.Pointer(cb))
}

// SetWaker replaces the stored waker. Per I3 exactly one waker is ever
// registered; the old one, if any, is simply dropped.
func (cb *ControlBlock) SetWaker(w Waker) {
	cb.mu.Lock()
	cb.waker = w
	cb.mu.Unlock()
}

// TakeWaker removes and returns the stored waker, or nil.
func (cb *ControlBlock) TakeWaker() Waker {
	cb.mu.Lock()
	w := cb.waker
	cb.waker = nil
	cb.mu.Unlock()
	return w
}

// SetError stores a completion-time error for the future to pick up.
func (cb *ControlBlock) SetError(err error) {
	cb.mu.Lock()
	cb.err = err
	cb.mu.Unlock()
}

// TakeError removes and returns the stored completion-time error, or nil.
func (cb *ControlBlock) TakeError() error {
	cb.mu.Lock()
	err := cb.err
	cb.err = nil
	cb.mu.Unlock()
	return err
}

// SetBytes stores the transfer count the poller read off the completion
// packet, for the future to pick up alongside any completion-time error.
func (cb *ControlBlock) SetBytes(n uint32) {
	cb.mu.Lock()
	cb.bytes = n
	cb.mu.Unlock()
}

// Bytes returns the last transfer count stored by SetBytes.
func (cb *ControlBlock) Bytes() uint32 {
	cb.mu.Lock()
	n := cb.bytes
	cb.mu.Unlock()
	return n
}

// Release drops one of the two logical references and reports the
// remaining count. It does not free anything — the garbage collector
// reclaims the block once the registry entry is gone and the future has
// dropped its own pointer — this exists so tests can assert the kernel's
// share and the future's share were each dropped exactly once (seed
// scenario 2).
func (cb *ControlBlock) Release() int32 {
	return cb.refs.Add(-1)
}

// Refs reports the current logical reference count.
func (cb *ControlBlock) Refs() int32 {
	return cb.refs.Load()
}

// FromOverlapped recovers the owning *ControlBlock from the overlapped
// pointer a completion packet carries, relying on Overlapped being the
// first field of ControlBlock.
func FromOverlapped(o *overlapped) *ControlBlock {
	return (*ControlBlock)(unsafe.Pointer(o))
}

var registry sync.Map // uintptr -> *ControlBlock

// Register makes cb reachable from a package-level map keyed by its
// kernel-visible pointer. Go's garbage collector does not relocate heap
// objects, but it also will not keep one alive from a bare uintptr held
// only by the kernel — Register is this module's analogue of
// Box::into_raw, and Unregister is the matching Box::from_raw.
func Register(cb *ControlBlock) {
	registry.Store(cb.Pointer(), cb)
}

// Unregister reclaims the kernel's logical reference given the raw
// pointer value recovered from a completion packet. The bool reports
// whether an entry was found; a miss means the packet does not belong to
// this process's control blocks, which should never happen under I5.
func Unregister(ptr uintptr) (*ControlBlock, bool) {
	v, ok := registry.LoadAndDelete(ptr)
	if !ok {
		return nil, false
	}
	return v.(*ControlBlock), true
}

// Live reports the number of control blocks currently registered (i.e.
// operations the kernel still owes a completion for). Used by tests.
func Live() int {
	n := 0
	registry.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
