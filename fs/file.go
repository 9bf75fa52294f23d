package fs

import (
	"context"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

// File is a positional handle to an open file: every read or write names
// its own offset, there is no shared cursor, so callers may have many
// reads and writes against the same File in flight concurrently.
type File struct {
	handle plat.Handle
	port   *port.Port
}

// Handle returns the raw OS handle, e.g. for diagnostics or to hand to
// another package that needs to attach it elsewhere.
func (f *File) Handle() plat.Handle { return f.handle }

// ReadAt reads into buffer starting at pos and returns the transfer count
// alongside the same buffer, per I6. Free function rather than a generic
// method: Go methods cannot introduce their own type parameters beyond
// the receiver's.
func ReadAt[B buf.MutableStableBuffer](ctx context.Context, f *File, buffer B, pos int64) (int, B, error) {
	desc := &op.ReadAt[B]{Position: pos, Buffer: buffer}
	fut := future.New[B, int](f.handle, f.port, desc)
	n, b, err := fut.Await(ctx)
	return n, b, err
}

// WriteAt writes buffer's initialized bytes starting at pos.
func WriteAt[B buf.StableBuffer](ctx context.Context, f *File, buffer B, pos int64) (int, B, error) {
	desc := &op.WriteAt[B]{Position: pos, Buffer: buffer}
	fut := future.New[B, int](f.handle, f.port, desc)
	n, b, err := fut.Await(ctx)
	return n, b, err
}
