package buf

import "unsafe"

// Segment is a single scatter/gather record: a pointer and a length, laid
// out the way the kernel's vectored I/O calls expect one entry of the
// array (WSABUF on Windows: Len then Buf).
type Segment struct {
	Length  uint32
	Pointer unsafe.Pointer
}

// VectoredBuffer treats an ordered sequence of inner buffers as a single
// logical gather/scatter target. T is any MutableStableBuffer; the
// sequence is fixed at construction (appending later would invalidate any
// in-flight gather/scatter array already handed to the kernel).
type VectoredBuffer[T MutableStableBuffer] struct {
	items []T
}

// NewVectoredBuffer wraps an ordered sequence of buffers.
func NewVectoredBuffer[T MutableStableBuffer](items ...T) *VectoredBuffer[T] {
	return &VectoredBuffer[T]{items: items}
}

// Items returns the inner buffers in order.
func (v *VectoredBuffer[T]) Items() []T { return v.items }

func (v *VectoredBuffer[T]) Capacity() int {
	total := 0
	for _, it := range v.items {
		total += it.Capacity()
	}
	return total
}

func (v *VectoredBuffer[T]) Len() int {
	total := 0
	for _, it := range v.items {
		total += it.Len()
	}
	return total
}

// Segments builds the kernel-facing gather/scatter array, one record per
// inner buffer at its current capacity.
func (v *VectoredBuffer[T]) Segments() []Segment {
	segs := make([]Segment, len(v.items))
	for i, it := range v.items {
		segs[i] = Segment{Pointer: it.MutPointer(), Length: uint32(it.Capacity())}
	}
	return segs
}

// SetInitializedLen distributes n bytes greedily across the inner buffers:
// the k-th buffer is marked fully initialized while n still covers its
// whole capacity; the first buffer whose capacity exceeds the remainder
// receives exactly that remainder, and every buffer after it is left
// untouched.
func (v *VectoredBuffer[T]) SetInitializedLen(n int) {
	if n < 0 || n > v.Capacity() {
		panic(&InvalidBufferError{Op: "SetInitializedLen", Requested: n, Bound: v.Capacity()})
	}
	remaining := n
	for _, it := range v.items {
		c := it.Capacity()
		if remaining >= c {
			it.SetInitializedLen(c)
			remaining -= c
			continue
		}
		it.SetInitializedLen(remaining)
		break
	}
}

func (v *VectoredBuffer[T]) Pointer() unsafe.Pointer {
	if len(v.items) == 0 {
		return nil
	}
	return v.items[0].Pointer()
}

func (v *VectoredBuffer[T]) MutPointer() unsafe.Pointer {
	if len(v.items) == 0 {
		return nil
	}
	return v.items[0].MutPointer()
}

// Slice is not supported on a vectored buffer as a whole; slice the inner
// buffer you need directly.
func (v *VectoredBuffer[T]) Slice(begin, end int) *OwnedSlice {
	panic(&InvalidBufferError{Op: "Slice", Requested: end, Bound: v.Capacity()})
}
