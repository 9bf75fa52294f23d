package op_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/buf"
	"github.com/windiocp/iocp/op"
)

func TestRecvOnPartialAndFinalize(t *testing.T) {
	b := buf.NewByteBuffer(16)
	r := &op.Recv[*buf.ByteBuffer]{Buffer: b}
	r.OnPartial(4)
	assert.Equal(t, 4, b.Len())

	n, out := r.Finalize(4, nil)
	assert.Equal(t, 4, n)
	assert.Same(t, b, out)
}

func TestSendFinalizeError(t *testing.T) {
	b := buf.WrapByteBuffer([]byte("payload"))
	s := &op.Send[*buf.ByteBuffer]{Buffer: b}
	n, out := s.Finalize(0, errors.New("reset"))
	assert.Equal(t, 0, n)
	assert.Same(t, b, out)
}

func TestRecvFromFinalizeWithoutAddressStillReportsCount(t *testing.T) {
	b := buf.NewByteBuffer(16)
	rf := &op.RecvFrom[*buf.ByteBuffer]{Buffer: b}
	rf.OnPartial(10)
	result, out := rf.Finalize(10, nil)
	assert.Equal(t, 10, result.N)
	assert.Nil(t, result.From)
	assert.Same(t, b, out)
}

func TestConnectFinalizeDiscardsAddress(t *testing.T) {
	c := &op.Connect{}
	b, o := c.Finalize(0, nil)
	assert.Equal(t, struct{}{}, b)
	assert.Equal(t, struct{}{}, o)
}

func TestConnectNamedPipeFinalize(t *testing.T) {
	c := &op.ConnectNamedPipe{}
	b, o := c.Finalize(0, nil)
	assert.Equal(t, struct{}{}, b)
	assert.Equal(t, struct{}{}, o)
}

func TestAcceptFinalizeErrorStillReturnsSocket(t *testing.T) {
	a := &op.Accept{AcceptSocket: 42}
	remote, handle := a.Finalize(0, errors.New("cancelled"))
	assert.Nil(t, remote)
	assert.EqualValues(t, 42, handle)
}

func TestNewAcceptFinalizeErrorStillReturnsSocketAndFreesScratchBuffer(t *testing.T) {
	a := op.NewAccept(42)
	remote, handle := a.Finalize(0, errors.New("cancelled"))
	assert.Nil(t, remote)
	assert.EqualValues(t, 42, handle)

	// Finalize must be safe to call more than once; a second call must not
	// double-free the mcache-backed scratch buffer.
	assert.NotPanics(t, func() { a.Finalize(0, errors.New("cancelled")) })
}
