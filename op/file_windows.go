//go:build windows

package op

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

// classify turns a Win32/Winsock BOOL-style call's (err) into an
// Outcome: nil means it already finished, ERROR_IO_PENDING
// means the kernel queued it, anything else is a real submission failure.
func classify(err error, bytesSync uint32) (Outcome, uint32, error) {
	if err == nil {
		return CompletedSynchronously, bytesSync, nil
	}
	if err == windows.ERROR_IO_PENDING {
		return StartedPending, 0, nil
	}
	if err == windows.ERROR_HANDLE_EOF {
		return CompletedSynchronously, 0, nil
	}
	return SubmissionFailed, 0, err
}

func fullBytes(b buf.MutableStableBuffer) []byte {
	if b.Capacity() == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.MutPointer()), b.Capacity())
}

func initBytes(b buf.StableBuffer) []byte {
	if b.Len() == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.Pointer()), b.Len())
}

func (r *ReadAt[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	ov := cb.OverlappedPointer()
	ov.Offset = uint32(uint64(r.Position) & 0xffffffff)
	ov.OffsetHigh = uint32(uint64(r.Position) >> 32)

	var done uint32
	err := windows.ReadFile(windows.Handle(handle), fullBytes(r.Buffer), &done, ov)
	return classify(err, done)
}

func (w *WriteAt[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	ov := cb.OverlappedPointer()
	ov.Offset = uint32(uint64(w.Position) & 0xffffffff)
	ov.OffsetHigh = uint32(uint64(w.Position) >> 32)

	var done uint32
	err := windows.WriteFile(windows.Handle(handle), initBytes(w.Buffer), &done, ov)
	return classify(err, done)
}
