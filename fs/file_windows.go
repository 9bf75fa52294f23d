//go:build windows

package fs

import (
	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
)

func (o *OpenOptions) winFlags() (access uint32, disposition uint32) {
	switch {
	case o.read && o.write:
		access = windows.GENERIC_READ | windows.GENERIC_WRITE
	case o.write:
		access = windows.GENERIC_WRITE
	default:
		access = windows.GENERIC_READ
	}
	if o.append {
		access &^= windows.GENERIC_WRITE
		access |= windows.FILE_APPEND_DATA
	}

	switch {
	case o.createNew:
		disposition = windows.CREATE_NEW
	case o.create && o.truncate:
		disposition = windows.CREATE_ALWAYS
	case o.create:
		disposition = windows.OPEN_ALWAYS
	case o.truncate:
		disposition = windows.TRUNCATE_EXISTING
	default:
		disposition = windows.OPEN_EXISTING
	}
	return access, disposition
}

// Open opens path on p's completion port with the options configured on
// o, always adding FILE_FLAG_OVERLAPPED so every read/write on the
// resulting File can complete asynchronously.
func (o *OpenOptions) Open(p *port.Port, path string) (*File, error) {
	access, disposition := o.winFlags()
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	h, err := windows.CreateFile(
		pathPtr, access, windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
		disposition, windows.FILE_FLAG_OVERLAPPED|o.customFlags, 0,
	)
	if err != nil {
		return nil, err
	}

	f := &File{handle: plat.Handle(h), port: p}
	if err := p.Attach(f.handle); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	return f, nil
}

// Open opens path read-only on p's completion port.
func Open(p *port.Port, path string) (*File, error) {
	return NewOpenOptions().Read(true).Open(p, path)
}

// Create creates (truncating if it exists) path for writing on p's
// completion port.
func Create(p *port.Port, path string) (*File, error) {
	return NewOpenOptions().Write(true).Create(true).Truncate(true).Open(p, path)
}

// Flush flushes any buffered writes to the underlying storage device.
func (f *File) Flush() error {
	return windows.FlushFileBuffers(windows.Handle(f.handle))
}

// Close closes the underlying OS handle. Any operation still in flight
// against it will fail its next overlapped call.
func (f *File) Close() error {
	return windows.CloseHandle(windows.Handle(f.handle))
}
