//go:build !windows

package net

import (
	"context"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func ListenUnix(p *port.Port, local addr.Unix) (*UnixListener, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (l *UnixListener) Accept(ctx context.Context) (*UnixConn, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (l *UnixListener) Close() error { return plat.ErrUnsupportedPlatform }

func DialUnix(ctx context.Context, p *port.Port, remote addr.Unix) (*UnixConn, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (c *UnixConn) Close() error { return plat.ErrUnsupportedPlatform }
