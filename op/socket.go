package op

import (
	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/plat"
)

// Recv fills Buffer from a connected socket.
type Recv[B buf.MutableStableBuffer] struct {
	Buffer B
}

func (r *Recv[B]) OnPartial(n uint32) { r.Buffer.SetInitializedLen(int(n)) }

func (r *Recv[B]) Finalize(n uint32, err error) (int, B) {
	if err != nil {
		return 0, r.Buffer
	}
	return int(n), r.Buffer
}

// Send writes Buffer's initialized bytes to a connected socket.
type Send[B buf.StableBuffer] struct {
	Buffer B
}

func (s *Send[B]) OnPartial(uint32) {}

func (s *Send[B]) Finalize(n uint32, err error) (int, B) {
	if err != nil {
		return 0, s.Buffer
	}
	return int(n), s.Buffer
}

// RecvFromResult pairs a transfer count with the sender's address.
type RecvFromResult struct {
	N    int
	From addr.SockAddr
}

// RecvFrom fills Buffer from an unconnected (datagram) socket and
// captures the sender's address in a fixed, kernel-populated buffer.
type RecvFrom[B buf.MutableStableBuffer] struct {
	Buffer  B
	addrBuf [addr.MaxSockAddrSize]byte
	addrLen int32
}

func (r *RecvFrom[B]) OnPartial(n uint32) { r.Buffer.SetInitializedLen(int(n)) }

func (r *RecvFrom[B]) Finalize(n uint32, err error) (RecvFromResult, B) {
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

// SendTo writes Buffer's initialized bytes to Dest on an unconnected
// (datagram) socket.
type SendTo[B buf.StableBuffer] struct {
	Buffer B
	Dest   addr.SockAddr
}

func (s *SendTo[B]) OnPartial(uint32) {}

func (s *SendTo[B]) Finalize(n uint32, err error) (int, B) {
	if err != nil {
		return 0, s.Buffer
	}
	return int(n), s.Buffer
}

// Connect carries the destination address by value; its result is the
// connection itself (handled by the caller's socket), so finalize just
// discards the address.
type Connect struct {
	Dest addr.SockAddr
}

func (c *Connect) OnPartial(uint32) {}

func (c *Connect) Finalize(n uint32, err error) (struct{}, struct{}) {
	return struct{}{}, struct{}{}
}

// ConnectNamedPipe waits for a client to connect to a named pipe server
// instance. It carries no buffer and produces no typed output beyond
// success/failure.
type ConnectNamedPipe struct{}

func (c *ConnectNamedPipe) OnPartial(uint32) {}

func (c *ConnectNamedPipe) Finalize(n uint32, err error) (struct{}, struct{}) {
	return struct{}{}, struct{}{}
}

// acceptAddrBufLen is AcceptEx's required output buffer size: two address
// slots (local, then remote), each padded 16 bytes past the largest
// sockaddr this package knows how to encode.
const acceptAddrBufLen = 2 * (addr.MaxSockAddrSize + 16)

// Accept owns a pre-created, unbound accepted-socket handle and a scratch
// address buffer AcceptEx fills with both the local and remote address.
// On any terminal outcome the accepted-socket handle is returned in the
// buffer slot, successful or not, so the caller can always clean it up.
type Accept struct {
	AcceptSocket plat.Handle
	addrBuf      []byte
}

// NewAccept allocates the scratch address buffer from mcache's
// size-bucketed pool rather than the heap, since it's discarded as soon
// as Finalize has parsed the remote address out of it.
func NewAccept(acceptSocket plat.Handle) *Accept {
	return &Accept{AcceptSocket: acceptSocket, addrBuf: mcache.Malloc(acceptAddrBufLen)}
}

func (a *Accept) OnPartial(uint32) {}

func (a *Accept) Finalize(n uint32, err error) (addr.SockAddr, plat.Handle) {
	defer a.freeAddrBuf()
	if err != nil {
		return nil, a.AcceptSocket
	}
	remote, rerr := parseAcceptRemote(a)
	if rerr != nil {
		return nil, a.AcceptSocket
	}
	return remote, a.AcceptSocket
}

// freeAddrBuf returns the scratch buffer to mcache. A zero-value Accept
// (built directly rather than via NewAccept, as some tests do) has a nil
// addrBuf and is left alone.
func (a *Accept) freeAddrBuf() {
	if a.addrBuf == nil {
		return
	}
	mcache.Free(a.addrBuf)
	a.addrBuf = nil
}
