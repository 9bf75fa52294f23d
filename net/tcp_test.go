package net

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/plat"
)

func TestTCPListenerLocalAddrReturnsBoundAddress(t *testing.T) {
	want := addr.IPv4{IP: [4]byte{127, 0, 0, 1}, Port: 9000}
	l := &TCPListener{handle: plat.InvalidHandle, addr: want}

	assert.Equal(t, want, l.LocalAddr())
	assert.Equal(t, plat.InvalidHandle, l.rawHandle())
}

func TestTCPStreamRemoteAddrReturnsAcceptedPeer(t *testing.T) {
	want := addr.IPv4{IP: [4]byte{10, 0, 0, 1}, Port: 5555}
	s := &TCPStream{handle: plat.InvalidHandle, remoteAddr: want}

	assert.Equal(t, want, s.RemoteAddr())
}

func TestTCPStreamRemoteAddrIsNilWhenUnset(t *testing.T) {
	s := &TCPStream{handle: plat.InvalidHandle}

	assert.Nil(t, s.RemoteAddr())
}
