//go:build windows

package net

import (
	"context"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/internal/wsainit"
	"github.com/windiocp/iocp/op"
)

// newOverlappedSocket creates an overlapped-capable socket, lazily
// starting the process-wide Winsock subsystem first.
func newOverlappedSocket(family int, typ, proto int32) (windows.Handle, error) {
	if err := wsainit.Ensure(); err != nil {
		return windows.InvalidHandle, err
	}
	return windows.WSASocket(int32(family), typ, proto, nil, 0, windows.WSA_FLAG_OVERLAPPED)
}

// ListenTCP creates a bound, listening TCP socket attached to p.
func ListenTCP(p *port.Port, local addr.SockAddr) (*TCPListener, error) {
	h, err := newOverlappedSocket(socketFamily(local), windows.SOCK_STREAM, windows.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}
	sa, err := toWindowsSockaddr(local)
	if err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	if err := windows.Bind(h, sa); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	if err := windows.Listen(h, windows.SOMAXCONN); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	if err := p.Attach(plat.Handle(h)); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}

	bound := local
	if wsa, gerr := windows.Getsockname(h); gerr == nil {
		if resolved, rerr := fromWindowsSockaddr(wsa); rerr == nil {
			bound = resolved
		}
	}
	return &TCPListener{handle: plat.Handle(h), port: p, addr: bound}, nil
}

// Accept waits for and accepts one incoming connection.
func (l *TCPListener) Accept(ctx context.Context) (*TCPStream, error) {
	acceptHandle, err := newOverlappedSocket(socketFamily(l.addr), windows.SOCK_STREAM, windows.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}

	desc := op.NewAccept(plat.Handle(acceptHandle))
	fut := future.New[plat.Handle, addr.SockAddr](l.handle, l.port, desc)
	remote, accepted, err := fut.Await(ctx)
	if err != nil {
		windows.CloseHandle(windows.Handle(accepted))
		return nil, err
	}
	if err := l.port.Attach(accepted); err != nil {
		windows.CloseHandle(windows.Handle(accepted))
		return nil, err
	}
	return &TCPStream{handle: accepted, port: l.port, remoteAddr: remote}, nil
}

// Close closes the listening socket.
func (l *TCPListener) Close() error { return windows.CloseHandle(windows.Handle(l.handle)) }

// DialTCP connects to a remote TCP address.
func DialTCP(ctx context.Context, p *port.Port, remote addr.SockAddr) (*TCPStream, error) {
	h, err := newOverlappedSocket(socketFamily(remote), windows.SOCK_STREAM, windows.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}

	// ConnectEx requires the socket to already be bound, even to a
	// wildcard local address.
	var wildcard addr.SockAddr
	switch remote.(type) {
	case addr.IPv6:
		wildcard = addr.IPv6{}
	default:
		wildcard = addr.IPv4{}
	}
	sa, err := toWindowsSockaddr(wildcard)
	if err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	if err := windows.Bind(h, sa); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	if err := p.Attach(plat.Handle(h)); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}

	desc := &op.Connect{Dest: remote}
	fut := future.New[struct{}, struct{}](plat.Handle(h), p, desc)
	if _, _, err := fut.Await(ctx); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	return &TCPStream{handle: plat.Handle(h), port: p, remoteAddr: remote}, nil
}

// Close closes the stream socket.
func (s *TCPStream) Close() error { return windows.CloseHandle(windows.Handle(s.handle)) }
