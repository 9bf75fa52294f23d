package op

import (
	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/buf"
)

// VectoredRecv fills a VectoredBuffer from a connected socket, distributing
// the transfer count across the inner buffers the same way the buffer
// itself does (buf.VectoredBuffer.SetInitializedLen).
type VectoredRecv[T buf.MutableStableBuffer] struct {
	Buffer *buf.VectoredBuffer[T]
}

func (r *VectoredRecv[T]) OnPartial(n uint32) { r.Buffer.SetInitializedLen(int(n)) }

func (r *VectoredRecv[T]) Finalize(n uint32, err error) (int, *buf.VectoredBuffer[T]) {
	if err != nil {
		return 0, r.Buffer
	}
	return int(n), r.Buffer
}

// VectoredSend writes a VectoredBuffer's initialized bytes to a connected
// socket as a single scatter/gather call.
type VectoredSend[T buf.MutableStableBuffer] struct {
	Buffer *buf.VectoredBuffer[T]
}

func (s *VectoredSend[T]) OnPartial(uint32) {}

func (s *VectoredSend[T]) Finalize(n uint32, err error) (int, *buf.VectoredBuffer[T]) {
	if err != nil {
		return 0, s.Buffer
	}
	return int(n), s.Buffer
}

// VectoredRecvFrom fills a VectoredBuffer from an unconnected (datagram)
// socket in a single scatter call, capturing the sender's address in a
// fixed, kernel-populated buffer exactly like RecvFrom does for a single
// buffer.
type VectoredRecvFrom[T buf.MutableStableBuffer] struct {
	Buffer  *buf.VectoredBuffer[T]
	addrBuf [addr.MaxSockAddrSize]byte
	addrLen int32
}

func (r *VectoredRecvFrom[T]) OnPartial(n uint32) { r.Buffer.SetInitializedLen(int(n)) }

func (r *VectoredRecvFrom[T]) Finalize(n uint32, err error) (RecvFromResult, *buf.VectoredBuffer[T]) {
	if err != nil {
		return RecvFromResult{}, r.Buffer
	}
	if r.addrLen <= 0 {
		return RecvFromResult{N: int(n)}, r.Buffer
	}
	from, perr := addr.Parse(r.addrBuf[:r.addrLen])
	if perr != nil {
		return RecvFromResult{N: int(n)}, r.Buffer
	}
	return RecvFromResult{N: int(n), From: from}, r.Buffer
}

// VectoredSendTo writes a VectoredBuffer's initialized bytes to Dest on an
// unconnected (datagram) socket in a single gather call.
type VectoredSendTo[T buf.MutableStableBuffer] struct {
	Buffer *buf.VectoredBuffer[T]
	Dest   addr.SockAddr
}

func (s *VectoredSendTo[T]) OnPartial(uint32) {}

func (s *VectoredSendTo[T]) Finalize(n uint32, err error) (int, *buf.VectoredBuffer[T]) {
	if err != nil {
		return 0, s.Buffer
	}
	return int(n), s.Buffer
}
