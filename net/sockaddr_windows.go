//go:build windows

package net

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/windiocp/iocp/addr"
)

func toWindowsSockaddr(a addr.SockAddr) (windows.Sockaddr, error) {
	switch v := a.(type) {
	case addr.IPv4:
		return &windows.SockaddrInet4{Port: int(v.Port), Addr: v.IP}, nil
	case addr.IPv6:
		return &windows.SockaddrInet6{Port: int(v.Port), ZoneId: v.ScopeID, Addr: v.IP}, nil
	case addr.Unix:
		return &windows.SockaddrUnix{Name: v.Path}, nil
	default:
		return nil, fmt.Errorf("net: unsupported address type %T", a)
	}
}

// fromWindowsSockaddr converts a resolved windows.Sockaddr (as returned by
// windows.Getsockname) back into this package's addr.SockAddr, the
// reverse of toWindowsSockaddr.
func fromWindowsSockaddr(sa windows.Sockaddr) (addr.SockAddr, error) {
	switch v := sa.(type) {
	case *windows.SockaddrInet4:
		return addr.IPv4{IP: v.Addr, Port: uint16(v.Port)}, nil
	case *windows.SockaddrInet6:
		return addr.IPv6{IP: v.Addr, Port: uint16(v.Port), ScopeID: v.ZoneId}, nil
	case *windows.SockaddrUnix:
		return addr.Unix{Path: v.Name}, nil
	default:
		return nil, fmt.Errorf("net: unsupported sockaddr type %T", sa)
	}
}

func socketFamily(a addr.SockAddr) int {
	switch a.(type) {
	case addr.IPv6:
		return addr.AFInet6
	case addr.Unix:
		return addr.AFUnix
	default:
		return addr.AFInet
	}
}
