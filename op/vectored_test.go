package op_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/op"
)

func TestVectoredRecvOnPartialDistributesAcrossInnerBuffers(t *testing.T) {
	a := buf.NewByteBuffer(4)
	b := buf.NewByteBuffer(4)
	vb := buf.NewVectoredBuffer[*buf.ByteBuffer](a, b)
	r := &op.VectoredRecv[*buf.ByteBuffer]{Buffer: vb}

	r.OnPartial(6)

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestVectoredSendFinalizeError(t *testing.T) {
	a := buf.WrapByteBuffer([]byte("abcd"))
	vb := buf.NewVectoredBuffer[*buf.ByteBuffer](a)
	s := &op.VectoredSend[*buf.ByteBuffer]{Buffer: vb}

	n, out := s.Finalize(0, errors.New("broken pipe"))
	assert.Equal(t, 0, n)
	assert.Same(t, vb, out)
}

func TestVectoredRecvFromOnPartialDistributesAcrossInnerBuffers(t *testing.T) {
	a := buf.NewByteBuffer(4)
	b := buf.NewByteBuffer(4)
	vb := buf.NewVectoredBuffer[*buf.ByteBuffer](a, b)
	r := &op.VectoredRecvFrom[*buf.ByteBuffer]{Buffer: vb}

	r.OnPartial(6)

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestVectoredRecvFromFinalizeWithoutAddressStillReportsCount(t *testing.T) {
	a := buf.NewByteBuffer(16)
	vb := buf.NewVectoredBuffer[*buf.ByteBuffer](a)
	r := &op.VectoredRecvFrom[*buf.ByteBuffer]{Buffer: vb}
	r.OnPartial(10)

	result, out := r.Finalize(10, nil)
	assert.Equal(t, 10, result.N)
	assert.Nil(t, result.From)
	assert.Same(t, vb, out)
}

func TestVectoredSendToFinalizeError(t *testing.T) {
	a := buf.WrapByteBuffer([]byte("abcd"))
	vb := buf.NewVectoredBuffer[*buf.ByteBuffer](a)
	s := &op.VectoredSendTo[*buf.ByteBuffer]{Buffer: vb}

	n, out := s.Finalize(0, errors.New("broken pipe"))
	assert.Equal(t, 0, n)
	assert.Same(t, vb, out)
}
