//go:build windows

package net_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windiocp/iocp/addr"
	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/net"
)

// TestUnixDomainSocketSendRecvWithPeerAddress drives the Unix-domain socket
// seed scenario: a listener bound to a temp-dir path accepts concurrently
// with a connect, the client sends "Hello world!", the server recv yields
// those bytes, and both sides report the other's path as RemoteAddr.
func TestUnixDomainSocketSendRecvWithPeerAddress(t *testing.T) {
	p, err := port.New()
	require.NoError(t, err)
	defer p.Close()

	sockPath := filepath.Join(t.TempDir(), "iocp.sock")
	local := addr.Unix{Path: sockPath}

	listener, err := net.ListenUnix(p, local)
	require.NoError(t, err)
	defer listener.Close()

	ctx := context.Background()
	const payload = "Hello world!"

	acceptCh := make(chan *net.UnixConn, 1)
	acceptErrCh := make(chan error, 1)
	go func() {
		conn, aerr := listener.Accept(ctx)
		acceptCh <- conn
		acceptErrCh <- aerr
	}()

	clientConn, err := net.DialUnix(ctx, p, local)
	require.NoError(t, err)
	defer clientConn.Close()

	require.NoError(t, <-acceptErrCh)
	serverConn := <-acceptCh
	defer serverConn.Close()

	_, _, err = net.Send(ctx, clientConn, buf.WrapByteBuffer([]byte(payload)))
	require.NoError(t, err)

	n, out, err := net.Recv(ctx, serverConn, buf.NewByteBuffer(64))
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, string(out.Bytes()))

	serverPeer, ok := serverConn.RemoteAddr().(addr.Unix)
	require.True(t, ok)
	assert.Equal(t, sockPath, serverPeer.Path)

	clientPeer, ok := clientConn.RemoteAddr().(addr.Unix)
	require.True(t, ok)
	assert.Equal(t, sockPath, clientPeer.Path)
}
