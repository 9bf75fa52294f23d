package op_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/op"
)

func TestReadAtOnPartialMarksBufferInitialized(t *testing.T) {
	b := buf.NewByteBuffer(8)
	r := &op.ReadAt[*buf.ByteBuffer]{Position: 0, Buffer: b}
	r.OnPartial(5)
	assert.Equal(t, 5, b.Len())
}

func TestReadAtFinalizeSuccess(t *testing.T) {
	b := buf.NewByteBuffer(8)
	r := &op.ReadAt[*buf.ByteBuffer]{Position: 0, Buffer: b}
	n, out := r.Finalize(6, nil)
	assert.Equal(t, 6, n)
	assert.Same(t, b, out)
}

func TestReadAtFinalizeErrorZeroesCount(t *testing.T) {
	b := buf.NewByteBuffer(8)
	r := &op.ReadAt[*buf.ByteBuffer]{Position: 0, Buffer: b}
	n, out := r.Finalize(6, errors.New("boom"))
	assert.Equal(t, 0, n)
	assert.Same(t, b, out)
}

func TestWriteAtFinalizeSuccess(t *testing.T) {
	b := buf.WrapByteBuffer([]byte("hello"))
	w := &op.WriteAt[*buf.ByteBuffer]{Position: 10, Buffer: b}
	n, out := w.Finalize(5, nil)
	assert.Equal(t, 5, n)
	assert.Same(t, b, out)
}
