// Package op implements the operation descriptor (C2): one Go type per
// kind of I/O (read-at, write-at, recv, send, recv-from, send-to, accept,
// connect, connect-named-pipe, and their vectored counterparts), each
// knowing how to submit itself to the kernel and how to shape a transfer
// count into its typed result.
package op

import (
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

// Outcome classifies how a Submit call resolved, mirroring §4.2's
// Started-Pending / Completed-Synchronously / Failed trio.
type Outcome int

const (
	// StartedPending means the kernel queued the operation; a completion
	// packet will eventually arrive at the port.
	StartedPending Outcome = iota
	// CompletedSynchronously means no completion packet will be posted;
	// the transfer count returned alongside is final.
	CompletedSynchronously
	// SubmissionFailed means the kernel rejected the call outright; no
	// completion packet will be posted.
	SubmissionFailed
)

// Descriptor is the per-operation-kind contract. B is the buffer type
// returned on every terminal outcome (I6); O is the shaped success value.
type Descriptor[B any, O any] interface {
	// Submit writes into cb's overlapped header as needed (e.g. a file
	// position) and issues the kernel call against handle. Exactly one
	// call per operation (§4.4).
	Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error)
	// OnPartial notifies the descriptor of a transfer count so reading
	// descriptors can grow their buffer's initialized length. A no-op for
	// descriptors that don't read into a buffer.
	OnPartial(n uint32)
	// Finalize consumes the descriptor, applies the result shaper, and
	// returns the typed output alongside the buffer (or handle, in
	// Accept's case) under custody.
	Finalize(n uint32, err error) (O, B)
}
