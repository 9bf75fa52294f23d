//go:build !windows

package sysfn

import (
	"unsafe"

	"github.com/windiocp/iocp/internal/plat"
)

func AcceptEx(listenSock, acceptSock plat.Handle, buf *byte, rxDataLen, localAddrLen, remoteAddrLen uint32, bytesReceived *uint32, overlapped unsafe.Pointer) error {
	return plat.ErrUnsupportedPlatform
}

func ConnectEx(s plat.Handle, name unsafe.Pointer, namelen int32, sendBuf *byte, sendDataLen uint32, bytesSent *uint32, overlapped unsafe.Pointer) error {
	return plat.ErrUnsupportedPlatform
}

func GetAcceptExSockaddrs(buf *byte, rxDataLen, localAddrLen, remoteAddrLen uint32) (local, remote unsafe.Pointer, localLen, remoteLen int32) {
	return nil, nil, 0, 0
}

func WSASendTo(s plat.Handle, bufs unsafe.Pointer, bufCount uint32, sent *uint32, flags uint32, to unsafe.Pointer, toLen int32, overlapped unsafe.Pointer) error {
	return plat.ErrUnsupportedPlatform
}
