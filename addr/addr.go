// Package addr encodes and decodes the fixed-layout sockaddr structures
// the kernel's socket calls and AcceptEx/GetAcceptExSockaddrs expect,
// using the same manual binary.LittleEndian field-packing technique the
// teacher's internal/uapi/marshal.go uses for its control-command
// structs, applied here to sockaddr_in/sockaddr_in6/sockaddr_un instead.
package addr

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Windows address family values (AF_INET6 is 23 on Windows, unlike
// Linux's 10 — this package is Windows-only in spirit even though it has
// no build tag, since it never touches a syscall directly).
const (
	AFUnspec = 0
	AFUnix   = 1
	AFInet   = 2
	AFInet6  = 23
)

// sockaddrInSize and sockaddrIn6Size are the Windows structure sizes:
// sockaddr_in is 16 bytes, sockaddr_in6 is 28 bytes.
const (
	sockaddrInSize  = 16
	sockaddrIn6Size = 28
	unixPathMax     = 108
	sockaddrUnSize  = 2 + unixPathMax
)

// MaxSockAddrSize is the largest encoded size across every supported
// family; address buffers for accept and recv-from must be sized to hold
// at least this much, per §6's "platform maximum" requirement.
const MaxSockAddrSize = sockaddrUnSize

// ErrAbstractUnsupported is returned for a Unix-domain address whose path
// begins with a NUL byte (Linux's "abstract namespace" convention).
// Windows AF_UNIX pathname sockets are fully supported; abstract
// addresses are not emulated — this is a deliberate, documented gap, not
// a bug.
var ErrAbstractUnsupported = errors.New("addr: abstract unix addresses are not supported on this platform")

// SockAddr is any address this package can encode into kernel-visible
// bytes and recover from them.
type SockAddr interface {
	Family() int
	Encode() []byte
}

// IPv4 is an AF_INET address.
type IPv4 struct {
	IP   [4]byte
	Port uint16
}

func (a IPv4) Family() int { return AFInet }

func (a IPv4) Encode() []byte {
	b := make([]byte, sockaddrInSize)
	binary.LittleEndian.PutUint16(b[0:2], AFInet)
	binary.BigEndian.PutUint16(b[2:4], a.Port)
	copy(b[4:8], a.IP[:])
	return b
}

// DecodeIPv4 parses a raw sockaddr_in.
func DecodeIPv4(b []byte) (IPv4, error) {
	if len(b) < sockaddrInSize {
		return IPv4{}, fmt.Errorf("addr: sockaddr_in truncated: got %d bytes", len(b))
	}
	if fam := binary.LittleEndian.Uint16(b[0:2]); fam != AFInet {
		return IPv4{}, fmt.Errorf("addr: expected AF_INET, got family %d", fam)
	}
	var a IPv4
	a.Port = binary.BigEndian.Uint16(b[2:4])
	copy(a.IP[:], b[4:8])
	return a, nil
}

// IPv6 is an AF_INET6 address.
type IPv6 struct {
	IP      [16]byte
	Port    uint16
	ScopeID uint32
}

func (a IPv6) Family() int { return AFInet6 }

func (a IPv6) Encode() []byte {
	b := make([]byte, sockaddrIn6Size)
	binary.LittleEndian.PutUint16(b[0:2], AFInet6)
	binary.BigEndian.PutUint16(b[2:4], a.Port)
	// bytes [4:8) are sin6_flowinfo, left zero.
	copy(b[8:24], a.IP[:])
	binary.LittleEndian.PutUint32(b[24:28], a.ScopeID)
	return b
}

// DecodeIPv6 parses a raw sockaddr_in6.
func DecodeIPv6(b []byte) (IPv6, error) {
	if len(b) < sockaddrIn6Size {
		return IPv6{}, fmt.Errorf("addr: sockaddr_in6 truncated: got %d bytes", len(b))
	}
	if fam := binary.LittleEndian.Uint16(b[0:2]); fam != AFInet6 {
		return IPv6{}, fmt.Errorf("addr: expected AF_INET6, got family %d", fam)
	}
	var a IPv6
	a.Port = binary.BigEndian.Uint16(b[2:4])
	copy(a.IP[:], b[8:24])
	a.ScopeID = binary.LittleEndian.Uint32(b[24:28])
	return a, nil
}

// Unix is an AF_UNIX pathname address. Abstract addresses (a path whose
// first byte is NUL) are only partially supported: Encode does not check
// for them and copies the path as given, while DecodeUnix rejects an
// encoded address whose path begins with NUL with ErrAbstractUnsupported.
type Unix struct {
	Path string
}

func (a Unix) Family() int { return AFUnix }

func (a Unix) Encode() []byte {
	b := make([]byte, sockaddrUnSize)
	binary.LittleEndian.PutUint16(b[0:2], AFUnix)
	if len(a.Path) > unixPathMax-1 {
		panic(fmt.Sprintf("addr: unix path too long: %d bytes", len(a.Path)))
	}
	copy(b[2:], a.Path)
	return b
}

// DecodeUnix parses a raw sockaddr_un. It returns ErrAbstractUnsupported
// for a path whose first byte is NUL.
func DecodeUnix(b []byte) (Unix, error) {
	if len(b) < 3 {
		return Unix{}, fmt.Errorf("addr: sockaddr_un truncated: got %d bytes", len(b))
	}
	if fam := binary.LittleEndian.Uint16(b[0:2]); fam != AFUnix {
		return Unix{}, fmt.Errorf("addr: expected AF_UNIX, got family %d", fam)
	}
	if b[2] == 0 {
		return Unix{}, ErrAbstractUnsupported
	}
	end := 2
	for end < len(b) && b[end] != 0 {
		end++
	}
	return Unix{Path: string(b[2:end])}, nil
}

// Parse dispatches on the family field of a raw sockaddr buffer, as
// produced by GetAcceptExSockaddrs or a recvfrom address buffer.
func Parse(b []byte) (SockAddr, error) {
	if len(b) < 2 {
		return nil, fmt.Errorf("addr: buffer too short to hold a family field")
	}
	switch binary.LittleEndian.Uint16(b[0:2]) {
	case AFInet:
		return DecodeIPv4(b)
	case AFInet6:
		return DecodeIPv6(b)
	case AFUnix:
		return DecodeUnix(b)
	default:
		return nil, fmt.Errorf("addr: unsupported address family %d", binary.LittleEndian.Uint16(b[0:2]))
	}
}
