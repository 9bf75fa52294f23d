//go:build windows

package op

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/internal/sysfn"
)

func toWSABufs(segs []buf.Segment) []windows.WSABuf {
	out := make([]windows.WSABuf, len(segs))
	for i, s := range segs {
		out[i] = windows.WSABuf{Len: s.Length, Buf: (*byte)(s.Pointer)}
	}
	return out
}

func (r *VectoredRecv[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabufs := toWSABufs(r.Buffer.Segments())
	var done, flags uint32
	var first *windows.WSABuf
	if len(wsabufs) > 0 {
		first = &wsabufs[0]
	}
	err := windows.WSARecv(windows.Handle(handle), first, uint32(len(wsabufs)), &done, &flags, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (s *VectoredSend[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabufs := toWSABufs(s.Buffer.Segments())
	for i, it := range s.Buffer.Items() {
		wsabufs[i].Len = uint32(it.Len())
	}
	var done uint32
	var first *windows.WSABuf
	if len(wsabufs) > 0 {
		first = &wsabufs[0]
	}
	err := windows.WSASend(windows.Handle(handle), first, uint32(len(wsabufs)), &done, 0, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (r *VectoredRecvFrom[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabufs := toWSABufs(r.Buffer.Segments())
	var done, flags uint32
	var first *windows.WSABuf
	if len(wsabufs) > 0 {
		first = &wsabufs[0]
	}
	r.addrLen = int32(len(r.addrBuf))
	from := (*windows.RawSockaddrAny)(unsafe.Pointer(&r.addrBuf[0]))
	err := windows.WSARecvFrom(windows.Handle(handle), first, uint32(len(wsabufs)), &done, &flags, from, &r.addrLen, cb.OverlappedPointer(), nil)
	return classify(err, done)
}

func (s *VectoredSendTo[T]) Submit(handle plat.Handle, cb *cblock.ControlBlock) (Outcome, uint32, error) {
	wsabufs := toWSABufs(s.Buffer.Segments())
	for i, it := range s.Buffer.Items() {
		wsabufs[i].Len = uint32(it.Len())
	}
	var first *windows.WSABuf
	if len(wsabufs) > 0 {
		first = &wsabufs[0]
	}
	raw := s.Dest.Encode()
	var done uint32
	err := sysfn.WSASendTo(windows.Handle(handle), first, uint32(len(wsabufs)), &done, 0, unsafe.Pointer(&raw[0]), int32(len(raw)), cb.OverlappedPointer())
	return classify(err, done)
}
