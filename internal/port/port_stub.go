//go:build !windows

package port

import "github.com/windiocp/iocp/internal/plat"

// INFINITE mirrors the Win32 constant; kept so callers compile on every
// platform even though a stub Port never waits.
const INFINITE = ^uint32(0)

// Port is a non-functional stand-in on non-Windows builds. Every method
// returns plat.ErrUnsupportedPlatform.
type Port struct{}

func New() (*Port, error) {
	return nil, plat.ErrUnsupportedPlatform
}

func (p *Port) Handle() plat.Handle {
	return plat.InvalidHandle
}

func (p *Port) Attach(h plat.Handle) error {
	return plat.ErrUnsupportedPlatform
}

func (p *Port) Close() error {
	return plat.ErrUnsupportedPlatform
}

func (p *Port) Poll() (handled bool, err error) {
	return false, plat.ErrUnsupportedPlatform
}

func (p *Port) Wait(timeoutMs uint32) (handled bool, err error) {
	return false, plat.ErrUnsupportedPlatform
}
