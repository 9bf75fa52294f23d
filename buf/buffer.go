// Package buf defines the buffer-ownership contract the completion core
// requires: a stable pointer, an initialized length, and a capacity that
// survives moves and re-borrows while the kernel has custody of the
// backing memory.
package buf

import (
	"fmt"
	"unsafe"
)

// StableBuffer is an owned region of memory whose backing pointer does not
// move for as long as the value exists. Go's non-moving garbage collector
// gives any heap-backed slice this property for free; the interface exists
// so operation descriptors can accept anything satisfying the contract,
// not just *ByteBuffer.
type StableBuffer interface {
	// Pointer returns the stable address of the first byte of the backing
	// storage, or nil if Capacity is 0.
	Pointer() unsafe.Pointer
	// Len returns the initialized length.
	Len() int
	// Capacity returns the total backing storage size.
	Capacity() int
	// Slice returns an owned view over [begin, end). Panics if the range is
	// invalid; see InvalidBufferError.
	Slice(begin, end int) *OwnedSlice
}

// MutableStableBuffer additionally allows writing into the backing storage
// and growing the initialized length up to Capacity.
type MutableStableBuffer interface {
	StableBuffer
	// MutPointer returns the same address as Pointer, typed for writes.
	MutPointer() unsafe.Pointer
	// SetInitializedLen grows the initialized length to n. Panics if
	// n > Capacity(); shrinking is not supported.
	SetInitializedLen(n int)
}

// InvalidBufferError reports a programmer misuse of the buffer contract:
// a set-initialized-len beyond capacity or an out-of-bounds slice range.
// These are fail-fast panics, not recoverable kernel errors (see §7 of the
// error taxonomy this module implements).
type InvalidBufferError struct {
	Op        string
	Requested int
	Bound     int
}

func (e *InvalidBufferError) Error() string {
	return fmt.Sprintf("buf: %s: %d exceeds bound %d", e.Op, e.Requested, e.Bound)
}

// ByteBuffer is a StableBuffer/MutableStableBuffer backed by a single
// contiguous []byte. Capacity is len(data); the initialized length is
// tracked separately and may be anywhere from 0 up to Capacity.
type ByteBuffer struct {
	data []byte
	n    int
}

// NewByteBuffer allocates a zeroed buffer of the given capacity with an
// initialized length of 0.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{data: make([]byte, capacity)}
}

// WrapByteBuffer adopts an existing slice as a buffer whose initialized
// length equals len(b) and whose capacity equals cap(b). The caller gives
// up ownership of b for as long as the runtime has custody of the buffer.
func WrapByteBuffer(b []byte) *ByteBuffer {
	full := b[:cap(b)]
	return &ByteBuffer{data: full, n: len(b)}
}

func (b *ByteBuffer) Pointer() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}

func (b *ByteBuffer) MutPointer() unsafe.Pointer { return b.Pointer() }

func (b *ByteBuffer) Len() int      { return b.n }
func (b *ByteBuffer) Capacity() int { return len(b.data) }

func (b *ByteBuffer) SetInitializedLen(n int) {
	if n < 0 || n > b.Capacity() {
		panic(&InvalidBufferError{Op: "SetInitializedLen", Requested: n, Bound: b.Capacity()})
	}
	b.n = n
}

// Bytes returns the initialized portion of the buffer.
func (b *ByteBuffer) Bytes() []byte { return b.data[:b.n] }

// Full returns the entire backing storage, initialized or not. Descriptors
// use this to hand the kernel a destination for reads.
func (b *ByteBuffer) Full() []byte { return b.data }

func (b *ByteBuffer) Slice(begin, end int) *OwnedSlice {
	if begin < 0 || end < begin || end > b.Capacity() {
		panic(&InvalidBufferError{Op: "Slice", Requested: end, Bound: b.Capacity()})
	}
	return &OwnedSlice{parent: b, begin: begin, end: end}
}

var (
	_ StableBuffer        = (*ByteBuffer)(nil)
	_ MutableStableBuffer = (*ByteBuffer)(nil)
)
