//go:build windows

package net_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/internal/port"
	"github.com/windiocp/iocp/net"
)

// TestNamedPipeMessageModeConnectWriteRead drives the named-pipe seed
// scenario: a server instance created in message mode with max-instances 5
// reports that configuration back through Info on both ends, a client
// opens and the server's Connect unblocks, and a server write is read back
// verbatim by the client.
func TestNamedPipeMessageModeConnectWriteRead(t *testing.T) {
	p, err := port.New()
	require.NoError(t, err)
	defer p.Close()

	path := fmt.Sprintf(`\\.\pipe\iocp-test-%s`, t.Name())

	server, err := net.NewServerOptions().Mode(net.PipeModeMessage).MaxInstances(5).Create(p, path)
	require.NoError(t, err)
	defer server.Close()

	serverInfo, err := server.Info()
	require.NoError(t, err)
	assert.Equal(t, net.PipeEndServer, serverInfo.End)
	assert.Equal(t, net.PipeModeMessage, serverInfo.Mode)
	assert.EqualValues(t, 5, serverInfo.MaxInstances)

	ctx := context.Background()
	connectErrCh := make(chan error, 1)
	go func() { connectErrCh <- server.Connect(ctx) }()

	client, err := net.DialPipe(ctx, p, path)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, <-connectErrCh)

	clientInfo, err := client.Info()
	require.NoError(t, err)
	assert.Equal(t, net.PipeEndClient, clientInfo.End)
	assert.Equal(t, net.PipeModeMessage, clientInfo.Mode)

	const payload = "hello pipe!!"
	require.Len(t, payload, 12)

	_, _, err = net.WriteAtPipe(ctx, server, buf.WrapByteBuffer([]byte(payload)))
	require.NoError(t, err)

	n, out, err := net.ReadAtPipe(ctx, client, buf.NewByteBuffer(64))
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, string(out.Bytes()))
}
