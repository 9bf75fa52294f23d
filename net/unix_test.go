package net

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/internal/plat"
)

func TestUnixListenerLocalAddrReturnsBoundPath(t *testing.T) {
	want := addr.Unix{Path: "/tmp/iocp-test.sock"}
	l := &UnixListener{handle: plat.InvalidHandle, addr: want}

	assert.Equal(t, want, l.LocalAddr())
}

func TestUnixConnExposesRawHandleAndPort(t *testing.T) {
	c := &UnixConn{handle: plat.InvalidHandle}

	assert.Equal(t, plat.InvalidHandle, c.rawHandle())
	assert.Nil(t, c.rawPort())
}
