//go:build windows

package future

import (
	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
)

// cancelIO issues CancelIoEx scoped to cb's overlapped header, so only this
// operation on handle is affected, not every pending operation on it.
func cancelIO(handle plat.Handle, cb *cblock.ControlBlock) error {
	err := windows.CancelIoEx(windows.Handle(handle), cb.OverlappedPointer())
	if err == windows.ERROR_NOT_FOUND {
		// Already completed or already reaped; nothing to cancel.
		return nil
	}
	return err
}
