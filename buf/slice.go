package buf

import "unsafe"

// OwnedSlice is an owned view over a sub-range [begin, end) of a parent
// MutableStableBuffer. It re-exposes the buffer contract over that range:
// its pointer is parent.Pointer()+begin, its length tracks the parent's
// initialized length clamped to the range, and SetInitializedLen forwards
// to the parent shifted by begin.
type OwnedSlice struct {
	parent MutableStableBuffer
	begin  int
	end    int
}

func (s *OwnedSlice) Pointer() unsafe.Pointer {
	return unsafe.Add(s.parent.Pointer(), s.begin)
}

func (s *OwnedSlice) MutPointer() unsafe.Pointer {
	return unsafe.Add(s.parent.MutPointer(), s.begin)
}

func (s *OwnedSlice) Len() int {
	l := s.parent.Len()
	if l > s.end {
		l = s.end
	}
	if l < s.begin {
		l = s.begin
	}
	return l - s.begin
}

func (s *OwnedSlice) Capacity() int { return s.end - s.begin }

func (s *OwnedSlice) SetInitializedLen(n int) {
	if n < 0 || n > s.Capacity() {
		panic(&InvalidBufferError{Op: "SetInitializedLen", Requested: n, Bound: s.Capacity()})
	}
	s.parent.SetInitializedLen(s.begin + n)
}

func (s *OwnedSlice) Slice(begin, end int) *OwnedSlice {
	if begin < 0 || end < begin || end > s.Capacity() {
		panic(&InvalidBufferError{Op: "Slice", Requested: end, Bound: s.Capacity()})
	}
	return &OwnedSlice{parent: s.parent, begin: s.begin + begin, end: s.begin + end}
}

// Bytes returns the initialized portion of the slice as a plain []byte,
// useful for callers that just want to read the result without going
// through the pointer-based contract.
func (s *OwnedSlice) Bytes() []byte {
	return unsafe.Slice((*byte)(s.parent.MutPointer()), s.parent.Capacity())[s.begin : s.begin+s.Len()]
}

var (
	_ StableBuffer        = (*OwnedSlice)(nil)
	_ MutableStableBuffer = (*OwnedSlice)(nil)
)
