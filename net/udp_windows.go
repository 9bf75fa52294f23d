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

// ListenUDP creates a bound datagram socket attached to p.
func ListenUDP(p *port.Port, local addr.SockAddr) (*UDPConn, error) {
	h, err := newOverlappedSocket(socketFamily(local), windows.SOCK_DGRAM, windows.IPPROTO_UDP)
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
	if err := p.Attach(plat.Handle(h)); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	return &UDPConn{handle: plat.Handle(h), port: p}, nil
}

// DialUDP creates a datagram socket bound to a wildcard address and
// connects it to remote, so subsequent Recv/Send (rather than RecvFrom/
// SendTo) can be used.
func DialUDP(ctx context.Context, p *port.Port, remote addr.SockAddr) (*UDPConn, error) {
	var wildcard addr.SockAddr
	switch remote.(type) {
	case addr.IPv6:
		wildcard = addr.IPv6{}
	default:
		wildcard = addr.IPv4{}
	}
	c, err := ListenUDP(p, wildcard)
	if err != nil {
		return nil, err
	}

	desc := &op.Connect{Dest: remote}
	fut := future.New[struct{}, struct{}](c.handle, p, desc)
	if _, _, err := fut.Await(ctx); err != nil {
		windows.CloseHandle(windows.Handle(c.handle))
		return nil, err
	}
	return c, nil
}

// Close closes the datagram socket.
func (c *UDPConn) Close() error { return windows.CloseHandle(windows.Handle(c.handle)) }
