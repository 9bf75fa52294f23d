//go:build windows

package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/fs"
	"github.com/windiocp/iocp/internal/port"
)

// TestWriteThenReadAtRoundTrip drives the write-then-read-back seed
// scenario: write "hello world..." to a new temp file, then read 1024
// bytes at offset 0 and see exactly those 14 bytes come back.
func TestWriteThenReadAtRoundTrip(t *testing.T) {
	p, err := port.New()
	require.NoError(t, err)
	defer p.Close()

	path := filepath.Join(t.TempDir(), "hello.txt")
	const payload = "hello world..."

	wf, err := fs.Create(p, path)
	require.NoError(t, err)
	n, _, err := fs.WriteAt(context.Background(), wf, buf.WrapByteBuffer([]byte(payload)), 0)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	require.NoError(t, wf.Close())

	rf, err := fs.Open(p, path)
	require.NoError(t, err)
	defer rf.Close()

	n, out, err := fs.ReadAt(context.Background(), rf, buf.NewByteBuffer(1024), 0)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, string(out.Bytes()))
}

// TestReadAtPastEndOfFile covers the boundary case alongside the seed
// scenario: reading past EOF reports a zero transfer count, not an error.
func TestReadAtPastEndOfFile(t *testing.T) {
	p, err := port.New()
	require.NoError(t, err)
	defer p.Close()

	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	f, err := fs.Open(p, path)
	require.NoError(t, err)
	defer f.Close()

	n, out, err := fs.ReadAt(context.Background(), f, buf.NewByteBuffer(16), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, out.Len())
}

// TestAppendOpenOptionAlwaysWritesAtEOF grounds the Append builder option:
// a WriteAt at position 0 on a file that already holds "abc" lands after
// the existing bytes because FILE_APPEND_DATA access ignores the caller's
// offset.
func TestAppendOpenOptionAlwaysWritesAtEOF(t *testing.T) {
	p, err := port.New()
	require.NoError(t, err)
	defer p.Close()

	path := filepath.Join(t.TempDir(), "append.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	f, err := fs.NewOpenOptions().Write(true).Append(true).Open(p, path)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = fs.WriteAt(context.Background(), f, buf.WrapByteBuffer([]byte("def")), 0)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(got))
}
