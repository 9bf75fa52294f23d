//go:build !windows

package net

import (
	"context"

	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func (o *ServerOptions) Create(p *port.Port, path string) (*NamedPipeServer, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (s *NamedPipeServer) Connect(ctx context.Context) error { return plat.ErrUnsupportedPlatform }

func (s *NamedPipeServer) Close() error { return plat.ErrUnsupportedPlatform }

func (s *NamedPipeServer) Info() (PipeInfo, error) { return PipeInfo{}, plat.ErrUnsupportedPlatform }

func DialPipe(ctx context.Context, p *port.Port, path string) (*NamedPipeClient, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (c *NamedPipeClient) Close() error { return plat.ErrUnsupportedPlatform }

func (c *NamedPipeClient) Info() (PipeInfo, error) { return PipeInfo{}, plat.ErrUnsupportedPlatform }
