//go:build windows

// Package sysfn resolves the Winsock extension functions that have no
// stable ordinal and so cannot be linked the ordinary way: AcceptEx,
// ConnectEx, and GetAcceptExSockaddrs. Each is fetched once, the first
// time it's needed, via WSAIoctl(SIO_GET_EXTENSION_FUNCTION_POINTER)
// against a scratch socket, and cached for the life of the process —
// mirroring the way the teacher resolves the real io_uring opcode once
// behind a build-tagged helper instead of hardcoding a value that isn't
// guaranteed stable across kernel versions.
package sysfn

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const sioGetExtensionFunctionPointer = 0xC8000006

var (
	wsaidAcceptEx = windows.GUID{
		Data1: 0xb5367df1, Data2: 0xcbac, Data3: 0x11cf,
		Data4: [8]byte{0x95, 0xca, 0x00, 0x80, 0x5f, 0x48, 0xa1, 0x92},
	}
	wsaidConnectEx = windows.GUID{
		Data1: 0x25a207b9, Data2: 0xddf3, Data3: 0x4660,
		Data4: [8]byte{0x8e, 0xe9, 0x76, 0xe5, 0x8c, 0x74, 0x06, 0x3e},
	}
	wsaidGetAcceptExSockaddrs = windows.GUID{
		Data1: 0xb5367df2, Data2: 0xcbac, Data3: 0x11cf,
		Data4: [8]byte{0x95, 0xca, 0x00, 0x80, 0x5f, 0x48, 0xa1, 0x92},
	}
)

var (
	once sync.Once

	acceptExAddr            uintptr
	connectExAddr           uintptr
	getAcceptExSockaddrAddr uintptr
	wsaSendToAddr           uintptr
	resolveErr              error
)

func resolve() {
	once.Do(func() {
		s, err := windows.WSASocket(windows.AF_INET, windows.SOCK_STREAM, 0, nil, 0, windows.WSA_FLAG_OVERLAPPED)
		if err != nil {
			resolveErr = err
			return
		}
		defer windows.CloseHandle(windows.Handle(s))

		if acceptExAddr, err = loadExtensionFunc(s, &wsaidAcceptEx); err != nil {
			resolveErr = err
			return
		}
		if connectExAddr, err = loadExtensionFunc(s, &wsaidConnectEx); err != nil {
			resolveErr = err
			return
		}
		if getAcceptExSockaddrAddr, err = loadExtensionFunc(s, &wsaidGetAcceptExSockaddrs); err != nil {
			resolveErr = err
			return
		}

		ws2 := windows.NewLazySystemDLL("ws2_32.dll")
		proc := ws2.NewProc("WSASendTo")
		if err := proc.Find(); err != nil {
			resolveErr = err
			return
		}
		wsaSendToAddr = proc.Addr()
	})
}

func loadExtensionFunc(s windows.Handle, guid *windows.GUID) (uintptr, error) {
	var fn uintptr
	var bytes uint32
	err := windows.WSAIoctl(
		s,
		sioGetExtensionFunctionPointer,
		(*byte)(unsafe.Pointer(guid)),
		uint32(unsafe.Sizeof(*guid)),
		(*byte)(unsafe.Pointer(&fn)),
		uint32(unsafe.Sizeof(fn)),
		&bytes,
		nil,
		0,
	)
	if err != nil {
		return 0, err
	}
	return fn, nil
}

// AcceptEx issues the extension AcceptEx call: listenSock must already be
// bound and listening; acceptSock is a pre-created, unbound socket handle
// that becomes the accepted connection on success. buf must be at least
// 2*(addrLen+16) bytes: local address, then remote address, each padded
// per the Win32 documentation.
func AcceptEx(listenSock, acceptSock windows.Handle, buf *byte, rxDataLen, localAddrLen, remoteAddrLen uint32, bytesReceived *uint32, overlapped *windows.Overlapped) error {
	resolve()
	if resolveErr != nil {
		return resolveErr
	}
	r1, _, err := windows.SyscallN(acceptExAddr,
		uintptr(listenSock), uintptr(acceptSock), uintptr(unsafe.Pointer(buf)),
		uintptr(rxDataLen), uintptr(localAddrLen), uintptr(remoteAddrLen),
		uintptr(unsafe.Pointer(bytesReceived)), uintptr(unsafe.Pointer(overlapped)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

// ConnectEx issues the extension ConnectEx call against an already-bound
// socket.
func ConnectEx(s windows.Handle, name unsafe.Pointer, namelen int32, sendBuf *byte, sendDataLen uint32, bytesSent *uint32, overlapped *windows.Overlapped) error {
	resolve()
	if resolveErr != nil {
		return resolveErr
	}
	r1, _, err := windows.SyscallN(connectExAddr,
		uintptr(s), uintptr(name), uintptr(namelen),
		uintptr(unsafe.Pointer(sendBuf)), uintptr(sendDataLen),
		uintptr(unsafe.Pointer(bytesSent)), uintptr(unsafe.Pointer(overlapped)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

// GetAcceptExSockaddrs parses the address buffer AcceptEx filled in,
// returning pointers to the local and remote sockaddr structures within
// it (they alias buf's memory; copy out anything that must outlive it).
func GetAcceptExSockaddrs(buf *byte, rxDataLen, localAddrLen, remoteAddrLen uint32) (local, remote unsafe.Pointer, localLen, remoteLen int32) {
	resolve()
	if resolveErr != nil {
		return nil, nil, 0, 0
	}
	windows.SyscallN(getAcceptExSockaddrAddr,
		uintptr(unsafe.Pointer(buf)), uintptr(rxDataLen),
		uintptr(localAddrLen), uintptr(remoteAddrLen),
		uintptr(unsafe.Pointer(&local)), uintptr(unsafe.Pointer(&localLen)),
		uintptr(unsafe.Pointer(&remote)), uintptr(unsafe.Pointer(&remoteLen)),
	)
	return local, remote, localLen, remoteLen
}

// WSASendTo is a plain Winsock export (unlike the three functions above,
// it needs no extension-function lookup), resolved once via ordinary
// GetProcAddress since golang.org/x/sys/windows does not wrap it.
func WSASendTo(s windows.Handle, bufs *windows.WSABuf, bufCount uint32, sent *uint32, flags uint32, to unsafe.Pointer, toLen int32, overlapped *windows.Overlapped) error {
	resolve()
	if resolveErr != nil {
		return resolveErr
	}
	r1, _, err := windows.SyscallN(wsaSendToAddr,
		uintptr(s), uintptr(unsafe.Pointer(bufs)), uintptr(bufCount),
		uintptr(unsafe.Pointer(sent)), uintptr(flags),
		uintptr(to), uintptr(toLen), uintptr(unsafe.Pointer(overlapped)), 0,
	)
	if r1 != 0 {
		return err
	}
	return nil
}
