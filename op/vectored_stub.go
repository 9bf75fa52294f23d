//go:build !windows

package op

import (
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

func (r *VectoredRecv[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (s *VectoredSend[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (r *VectoredRecvFrom[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (s *VectoredSendTo[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}
