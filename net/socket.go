// Package net provides completion-based TCP, UDP, Unix-domain, and named
// pipe connections. Grounded on original_source/src/net/{socket,tcp,udp,
// unix,named_pipe}.rs: a shared inner socket that Recv/Send/RecvFrom/SendTo
// delegate to (there, via Deref; here, via small generic free functions
// over a conn constraint, since Go methods can't introduce their own type
// parameters).
package net

import (
	"context"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

// conn is implemented by every connection-oriented type in this package;
// it's the minimum needed to drive a descriptor through a future.
type conn interface {
	rawHandle() plat.Handle
	rawPort() *port.Port
}

// Recv fills buffer from c, returning the transfer count.
func Recv[B buf.MutableStableBuffer, C conn](ctx context.Context, c C, buffer B) (int, B, error) {
	desc := &op.Recv[B]{Buffer: buffer}
	fut := future.New[B, int](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}

// Send writes buffer's initialized bytes to c.
func Send[B buf.StableBuffer, C conn](ctx context.Context, c C, buffer B) (int, B, error) {
	desc := &op.Send[B]{Buffer: buffer}
	fut := future.New[B, int](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}

// RecvFrom fills buffer from c (an unconnected datagram socket) and
// reports the sender's address.
func RecvFrom[B buf.MutableStableBuffer, C conn](ctx context.Context, c C, buffer B) (op.RecvFromResult, B, error) {
	desc := &op.RecvFrom[B]{Buffer: buffer}
	fut := future.New[B, op.RecvFromResult](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}

// SendTo writes buffer's initialized bytes to dest on c (an unconnected
// datagram socket).
func SendTo[B buf.StableBuffer, C conn](ctx context.Context, c C, buffer B, dest addr.SockAddr) (int, B, error) {
	desc := &op.SendTo[B]{Buffer: buffer, Dest: dest}
	fut := future.New[B, int](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}

// TCPListener accepts incoming stream connections.
type TCPListener struct {
	handle plat.Handle
	port   *port.Port
	addr   addr.SockAddr
}

func (l *TCPListener) rawHandle() plat.Handle { return l.handle }
func (l *TCPListener) rawPort() *port.Port    { return l.port }

// LocalAddr returns the address the listener was bound to.
func (l *TCPListener) LocalAddr() addr.SockAddr { return l.addr }

// TCPStream is a connected TCP stream socket.
type TCPStream struct {
	handle     plat.Handle
	port       *port.Port
	remoteAddr addr.SockAddr
}

func (s *TCPStream) rawHandle() plat.Handle { return s.handle }
func (s *TCPStream) rawPort() *port.Port    { return s.port }

// RemoteAddr returns the peer address, if known (set on Accept to the
// parsed peer address, and by DialTCP to the address it dialed; nil on a
// stream built without one).
func (s *TCPStream) RemoteAddr() addr.SockAddr { return s.remoteAddr }

// UDPConn is a datagram socket, optionally connected to a fixed peer.
type UDPConn struct {
	handle plat.Handle
	port   *port.Port
}

func (c *UDPConn) rawHandle() plat.Handle { return c.handle }
func (c *UDPConn) rawPort() *port.Port    { return c.port }

// UnixListener accepts incoming Unix-domain stream connections.
type UnixListener struct {
	handle plat.Handle
	port   *port.Port
	addr   addr.SockAddr
}

func (l *UnixListener) rawHandle() plat.Handle { return l.handle }
func (l *UnixListener) rawPort() *port.Port    { return l.port }

// LocalAddr returns the path the listener was bound to.
func (l *UnixListener) LocalAddr() addr.SockAddr { return l.addr }

// UnixConn is a connected Unix-domain stream socket.
type UnixConn struct {
	handle     plat.Handle
	port       *port.Port
	remoteAddr addr.SockAddr
}

func (c *UnixConn) rawHandle() plat.Handle { return c.handle }
func (c *UnixConn) rawPort() *port.Port    { return c.port }

// RemoteAddr returns the peer address, if known (set on both Accept and Dial).
func (c *UnixConn) RemoteAddr() addr.SockAddr { return c.remoteAddr }
