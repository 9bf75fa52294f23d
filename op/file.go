package op

import "github.com/windiocp/iocp/buf"

// ReadAt reads into Buffer starting at Position. Submit writes Position's
// low/high 32-bit halves into the control block's overlapped offset
// fields; no resubmission is required even on a short read (§4.2).
type ReadAt[B buf.MutableStableBuffer] struct {
	Position int64
	Buffer   B
}

func (r *ReadAt[B]) OnPartial(n uint32) {
	r.Buffer.SetInitializedLen(int(n))
}

func (r *ReadAt[B]) Finalize(n uint32, err error) (int, B) {
	if err != nil {
		return 0, r.Buffer
	}
	return int(n), r.Buffer
}

// WriteAt writes Buffer's initialized bytes starting at Position.
type WriteAt[B buf.StableBuffer] struct {
	Position int64
	Buffer   B
}

func (w *WriteAt[B]) OnPartial(uint32) {}

func (w *WriteAt[B]) Finalize(n uint32, err error) (int, B) {
	if err != nil {
		return 0, w.Buffer
	}
	return int(n), w.Buffer
}
