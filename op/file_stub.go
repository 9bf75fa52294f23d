//go:build !windows

package op

import (
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

func (r *ReadAt[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (w *WriteAt[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}
