//go:build windows

package op

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/sysfn"
)

func (r *Recv[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabuf := windows.WSABuf{Len: uint32(r.Buffer.Capacity()), Buf: (*byte)(r.Buffer.MutPointer())}
	var done, flags uint32
	err := windows.WSARecv(windows.Handle(handle), &wsabuf, 1, &done, &flags, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (s *Send[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabuf := windows.WSABuf{Len: uint32(s.Buffer.Len()), Buf: (*byte)(s.Buffer.Pointer())}
	var done uint32
	err := windows.WSASend(windows.Handle(handle), &wsabuf, 1, &done, 0, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (r *RecvFrom[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabuf := windows.WSABuf{Len: uint32(r.Buffer.Capacity()), Buf: (*byte)(r.Buffer.MutPointer())}
	var done, flags uint32
	r.addrLen = int32(len(r.addrBuf))
	from := (*windows.RawSockaddrAny)(unsafe.Pointer(&r.addrBuf[0]))
	err := windows.WSARecvFrom(windows.Handle(handle), &wsabuf, 1, &done, &flags, from, &r.addrLen, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (s *SendTo[B]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabuf := windows.WSABuf{Len: uint32(s.Buffer.Len()), Buf: (*byte)(s.Buffer.Pointer())}
	raw := s.Dest.Encode()
	var done uint32
	err := sysfn.WSASendTo(windows.Handle(handle), &wsabuf, 1, &done, 0, unsafe.Pointer(&raw[0]), int32(len(raw)), cb.OverlappedPointer())
	return classify(err, done)
}

func (c *Connect) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	raw := c.Dest.Encode()
	var bytes uint32
	err := sysfn.ConnectEx(windows.Handle(handle), unsafe.Pointer(&raw[0]), int32(len(raw)), nil, 0, &bytes, cb.OverlappedPointer())
	return classify(err, bytes)
}

func (c *ConnectNamedPipe) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	err := windows.ConnectNamedPipe(windows.Handle(handle), cb.OverlappedPointer())
	if err == windows.ERROR_PIPE_CONNECTED {
		return CompletedSynchronously, 0, nil
	}
	return classify(err, 0)
}

func (a *Accept) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	const addrSlotLen = uint32(addr.MaxSockAddrSize + 16)
	var bytes uint32
	err := sysfn.AcceptEx(
		windows.Handle(handle), windows.Handle(a.AcceptSocket),
		&a.addrBuf[0], 0, addrSlotLen, addrSlotLen,
		&bytes, cb.OverlappedPointer(),
	)
	return classify(err, bytes)
}

func parseAcceptRemote(a *Accept) (addr.SockAddr, error) {
	const addrSlotLen = uint32(addr.MaxSockAddrSize + 16)
	_, remotePtr, _, remoteLen := sysfn.GetAcceptExSockaddrs(&a.addrBuf[0], 0, addrSlotLen, addrSlotLen)
	if remotePtr == nil || remoteLen <= 0 {
		return nil, fmt.Errorf("op: accept: no remote address available")
	}
	raw := unsafe.Slice((*byte)(remotePtr), int(remoteLen))
	return addr.Parse(raw)
}
