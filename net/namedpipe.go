package net

import (
	"context"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

// NamedPipeServer is one instance of a named pipe's server end. Windows
// requires a fresh instance be created and waiting before each client
// connects — a server that Accepts once must create its successor before
// handling the accepted client, or a racing client sees NotFound.
type NamedPipeServer struct {
	handle plat.Handle
	port   *port.Port
}

func (s *NamedPipeServer) rawHandle() plat.Handle { return s.handle }
func (s *NamedPipeServer) rawPort() *port.Port    { return s.port }

// NamedPipeClient is a connected client end of a named pipe.
type NamedPipeClient struct {
	handle plat.Handle
	port   *port.Port
}

func (c *NamedPipeClient) rawHandle() plat.Handle { return c.handle }
func (c *NamedPipeClient) rawPort() *port.Port    { return c.port }

// pipeUnlimitedInstances mirrors windows.PIPE_UNLIMITED_INSTANCES (255);
// duplicated here so this file stays buildable without the windows tag.
const pipeUnlimitedInstances = 255

// PipeMode selects byte-stream or message framing for a pipe instance.
type PipeMode int

const (
	PipeModeByte PipeMode = iota
	PipeModeMessage
)

// PipeEnd identifies which end of a pipe a handle refers to.
type PipeEnd int

const (
	PipeEndClient PipeEnd = iota
	PipeEndServer
)

// PipeInfo reports a pipe instance's configuration, as returned by
// GetNamedPipeInfo.
type PipeInfo struct {
	End          PipeEnd
	Mode         PipeMode
	MaxInstances uint32
}

// ServerOptions configures a named pipe server instance, mirroring the
// subset of CreateNamedPipe's parameters original_source/src/net/
// named_pipe.rs exposes through its ServerOptions builder.
type ServerOptions struct {
	firstInstance bool
	maxInstances  uint32
	inBufferSize  uint32
	outBufferSize uint32
	mode          PipeMode
}

// NewServerOptions returns a builder with Windows' own defaults: no
// first-instance requirement, unlimited instances, 64KiB buffers, byte mode.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{maxInstances: pipeUnlimitedInstances, inBufferSize: 65536, outBufferSize: 65536}
}

// Mode selects byte-stream or message framing for instances this builder
// creates.
func (o *ServerOptions) Mode(m PipeMode) *ServerOptions { o.mode = m; return o }

// FirstPipeInstance requires this call to fail if another instance of the
// pipe already exists, so the caller can detect an already-running server.
func (o *ServerOptions) FirstPipeInstance(v bool) *ServerOptions { o.firstInstance = v; return o }

// MaxInstances bounds how many simultaneous instances of the pipe may
// exist; 0 means unlimited.
func (o *ServerOptions) MaxInstances(n uint32) *ServerOptions {
	if n == 0 {
		n = pipeUnlimitedInstances
	}
	o.maxInstances = n
	return o
}

// BufferSizes sets the suggested kernel-side read/write buffer sizes.
func (o *ServerOptions) BufferSizes(in, out uint32) *ServerOptions {
	o.inBufferSize, o.outBufferSize = in, out
	return o
}

// ReadAtPipe reads into buffer; pipes ignore the offset, it's always 0.
func ReadAtPipe[B buf.MutableStableBuffer, C conn](ctx context.Context, c C, buffer B) (int, B, error) {
	desc := &op.ReadAt[B]{Position: 0, Buffer: buffer}
	fut := future.New[B, int](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}

// WriteAtPipe writes buffer's initialized bytes; pipes ignore the offset.
func WriteAtPipe[B buf.StableBuffer, C conn](ctx context.Context, c C, buffer B) (int, B, error) {
	desc := &op.WriteAt[B]{Position: 0, Buffer: buffer}
	fut := future.New[B, int](c.rawHandle(), c.rawPort(), desc)
	return fut.Await(ctx)
}
