//go:build !windows

package net

import (
	"context"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func ListenUDP(p *port.Port, local addr.SockAddr) (*UDPConn, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func DialUDP(ctx context.Context, p *port.Port, remote addr.SockAddr) (*UDPConn, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (c *UDPConn) Close() error { return plat.ErrUnsupportedPlatform }
