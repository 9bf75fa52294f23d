//go:build !windows

package fs

import (
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func (o *OpenOptions) Open(p *port.Port, path string) (*File, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func Open(p *port.Port, path string) (*File, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func Create(p *port.Port, path string) (*File, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (f *File) Flush() error {
	return plat.ErrUnsupportedPlatform
}

func (f *File) Close() error {
	return plat.ErrUnsupportedPlatform
}
