//go:build !windows

package op

import (
	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

func (r *Recv[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (s *Send[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (r *RecvFrom[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (s *SendTo[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (c *Connect) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (c *ConnectNamedPipe) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func (a *Accept) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	return SubmissionFailed, 0, plat.ErrUnsupportedPlatform
}

func parseAcceptRemote(a *Accept) (addr.SockAddr, error) {
	return nil, plat.ErrUnsupportedPlatform
}
