//go:build !windows

package net

import (
	"context"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func ListenTCP(p *port.Port, local addr.SockAddr) (*TCPListener, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (l *TCPListener) Accept(ctx context.Context) (*TCPStream, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (l *TCPListener) Close() error { return plat.ErrUnsupportedPlatform }

func DialTCP(ctx context.Context, p *port.Port, remote addr.SockAddr) (*TCPStream, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (s *TCPStream) Close() error { return plat.ErrUnsupportedPlatform }
