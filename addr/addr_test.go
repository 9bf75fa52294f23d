package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4RoundTrip(t *testing.T) {
	in := IPv4{IP: [4]byte{127, 0, 0, 1}, Port: 8080}
	out, err := DecodeIPv4(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestIPv6RoundTrip(t *testing.T) {
	in := IPv6{IP: [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, Port: 443, ScopeID: 0}
	out, err := DecodeIPv6(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnixRoundTrip(t *testing.T) {
	in := Unix{Path: "/tmp/iocp-test.sock"}
	out, err := DecodeUnix(in.Encode())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnixAbstractAddressRejected(t *testing.T) {
	raw := make([]byte, sockaddrUnSize)
	raw[0] = AFUnix
	raw[2] = 0 // leading NUL: abstract namespace
	_, err := DecodeUnix(raw)
	assert.ErrorIs(t, err, ErrAbstractUnsupported)
}

func TestParseDispatchesOnFamily(t *testing.T) {
	v4 := IPv4{IP: [4]byte{10, 0, 0, 1}, Port: 22}
	parsed, err := Parse(v4.Encode())
	require.NoError(t, err)
	assert.Equal(t, v4, parsed)
}

func TestUnixPathTooLongPanics(t *testing.T) {
	long := make([]byte, unixPathMax)
	for i := range long {
		long[i] = 'a'
	}
	assert.Panics(t, func() { Unix{Path: string(long)}.Encode() })
}
