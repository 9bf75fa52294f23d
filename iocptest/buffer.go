// Package iocptest provides test doubles for code that consumes this
// module: a refcount-instrumented buffer for exercising cancellation drop
// behavior, and a call-counting Observer.
package iocptest

import (
	"sync/atomic"
	"unsafe"

	"github.com/windiocp/iocp/buf"
)

// RefCountedBuffer wraps a buf.ByteBuffer with an atomic reference count,
// so a test can assert that cancelling an in-flight operation releases
// every reference the runtime took beyond the caller's own. The runtime
// itself never calls Retain/Release — Go's garbage collector keeps the
// backing memory alive for as long as anything can reach it — but the
// count still exercises the original's "ref-count drops to 1 after
// cancel" property when a test calls Retain around Future.Poll and
// Release around Future.Cancel.
type RefCountedBuffer struct {
	inner *buf.ByteBuffer
	refs  atomic.Int64
}

// NewRefCountedBuffer allocates a buffer of the given capacity with an
// initial reference count of 1 (the caller's own reference).
func NewRefCountedBuffer(capacity int) *RefCountedBuffer {
	b := &RefCountedBuffer{inner: buf.NewByteBuffer(capacity)}
	b.refs.Store(1)
	return b
}

// Retain increments the reference count and returns the new value.
func (b *RefCountedBuffer) Retain() int64 { return b.refs.Add(1) }

// Release decrements the reference count and returns the new value.
func (b *RefCountedBuffer) Release() int64 { return b.refs.Add(-1) }

// RefCount returns the current reference count.
func (b *RefCountedBuffer) RefCount() int64 { return b.refs.Load() }

func (b *RefCountedBuffer) Pointer() unsafe.Pointer    { return b.inner.Pointer() }
func (b *RefCountedBuffer) MutPointer() unsafe.Pointer { return b.inner.MutPointer() }
func (b *RefCountedBuffer) Len() int                   { return b.inner.Len() }
func (b *RefCountedBuffer) Capacity() int              { return b.inner.Capacity() }
func (b *RefCountedBuffer) SetInitializedLen(n int)     { b.inner.SetInitializedLen(n) }
func (b *RefCountedBuffer) Slice(begin, end int) *buf.OwnedSlice {
	return b.inner.Slice(begin, end)
}

// Bytes returns the initialized portion of the backing buffer.
func (b *RefCountedBuffer) Bytes() []byte { return b.inner.Bytes() }

var (
	_ buf.StableBuffer        = (*RefCountedBuffer)(nil)
	_ buf.MutableStableBuffer = (*RefCountedBuffer)(nil)
)
