//go:build !windows

package future

import (
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

func cancelIO(handle plat.Handle, cb *cblock.ControlBlock) error {
	return plat.ErrUnsupportedPlatform
}
