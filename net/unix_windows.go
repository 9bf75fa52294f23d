//go:build windows

package net

import (
	"context"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

// ListenUnix creates a bound, listening AF_UNIX stream socket. Windows has
// supported AF_UNIX stream sockets since the Windows 10 1803 / Server 2019
// Insider builds. Abstract addresses (a leading NUL byte) are not emulated;
// ListenUnix does not check for them and passes the path to bind as given.
func ListenUnix(p *port.Port, local addr.Unix) (*UnixListener, error) {
	h, err := newOverlappedSocket(addr.AFUnix, windows.SOCK_STREAM, 0)
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
	return &UnixListener{handle: plat.Handle(h), port: p, addr: local}, nil
}

// Accept waits for and accepts one incoming connection.
func (l *UnixListener) Accept(ctx context.Context) (*UnixConn, error) {
	acceptHandle, err := newOverlappedSocket(addr.AFUnix, windows.SOCK_STREAM, 0)
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
	return &UnixConn{handle: accepted, port: l.port, remoteAddr: remote}, nil
}

// Close closes the listening socket.
func (l *UnixListener) Close() error { return windows.CloseHandle(windows.Handle(l.handle)) }

// DialUnix connects to a Unix-domain socket path.
func DialUnix(ctx context.Context, p *port.Port, remote addr.Unix) (*UnixConn, error) {
	h, err := newOverlappedSocket(addr.AFUnix, windows.SOCK_STREAM, 0)
	if err != nil {
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
	return &UnixConn{handle: plat.Handle(h), port: p, remoteAddr: remote}, nil
}

// Close closes the connection.
func (c *UnixConn) Close() error { return windows.CloseHandle(windows.Handle(c.handle)) }
