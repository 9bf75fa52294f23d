//go:build windows

package net

import (
	"context"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/op"
)

const pipeAccessDuplex = 0x00000003 // PIPE_ACCESS_DUPLEX
const pipeTypeByte = 0x00000000     // PIPE_TYPE_BYTE
const pipeReadModeByte = 0x00000000 // PIPE_READMODE_BYTE
const pipeWait = 0x00000000         // PIPE_WAIT

// Create opens a new instance of the named pipe at path (e.g.
// `\\.\pipe\name`), ready to accept a client via Connect.
func (o *ServerOptions) Create(p *port.Port, path string) (*NamedPipeServer, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	openMode := uint32(pipeAccessDuplex) | windows.FILE_FLAG_OVERLAPPED
	if o.firstInstance {
		openMode |= windows.FILE_FLAG_FIRST_PIPE_INSTANCE
	}
	pipeMode := uint32(pipeTypeByte | pipeReadModeByte | pipeWait)
	if o.mode == PipeModeMessage {
		pipeMode = uint32(windows.PIPE_TYPE_MESSAGE|windows.PIPE_READMODE_MESSAGE) | pipeWait
	}

	h, err := windows.CreateNamedPipe(
		pathPtr, openMode, pipeMode, o.maxInstances,
		o.outBufferSize, o.inBufferSize, 0, nil,
	)
	if err != nil {
		return nil, err
	}
	if err := p.Attach(plat.Handle(h)); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	return &NamedPipeServer{handle: plat.Handle(h), port: p}, nil
}

// Info queries this pipe instance's end, mode, and configured max
// instances via GetNamedPipeInfo.
func (s *NamedPipeServer) Info() (PipeInfo, error) {
	return queryPipeInfo(windows.Handle(s.handle))
}

// Info queries this pipe instance's end, mode, and configured max
// instances via GetNamedPipeInfo.
func (c *NamedPipeClient) Info() (PipeInfo, error) {
	return queryPipeInfo(windows.Handle(c.handle))
}

func queryPipeInfo(h windows.Handle) (PipeInfo, error) {
	var flags, outSize, inSize, maxInstances uint32
	if err := windows.GetNamedPipeInfo(h, &flags, &outSize, &inSize, &maxInstances); err != nil {
		return PipeInfo{}, err
	}

	info := PipeInfo{MaxInstances: maxInstances}
	if flags&windows.PIPE_SERVER_END != 0 {
		info.End = PipeEndServer
	} else {
		info.End = PipeEndClient
	}
	if flags&windows.PIPE_TYPE_MESSAGE != 0 {
		info.Mode = PipeModeMessage
	} else {
		info.Mode = PipeModeByte
	}
	return info, nil
}

// Connect waits for a client to connect to this pipe instance.
func (s *NamedPipeServer) Connect(ctx context.Context) error {
	desc := &op.ConnectNamedPipe{}
	fut := future.New[struct{}, struct{}](s.handle, s.port, desc)
	_, _, err := fut.Await(ctx)
	return err
}

// Close closes this pipe instance; closing an open handle implicitly
// disconnects any connected client.
func (s *NamedPipeServer) Close() error { return windows.CloseHandle(windows.Handle(s.handle)) }

// DialPipe connects to an existing named pipe instance as a client.
func DialPipe(ctx context.Context, p *port.Port, path string) (*NamedPipeClient, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(
		pathPtr, windows.GENERIC_READ|windows.GENERIC_WRITE, 0, nil,
		windows.OPEN_EXISTING, windows.FILE_FLAG_OVERLAPPED, 0,
	)
	if err != nil {
		return nil, err
	}
	if err := p.Attach(plat.Handle(h)); err != nil {
		windows.CloseHandle(h)
		return nil, err
	}
	return &NamedPipeClient{handle: plat.Handle(h), port: p}, nil
}

// Close closes the client end of the pipe.
func (c *NamedPipeClient) Close() error { return windows.CloseHandle(windows.Handle(c.handle)) }
