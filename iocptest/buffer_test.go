package iocptest_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/iocptest"
)

func TestRefCountedBufferStartsAtOne(t *testing.T) {
	b := iocptest.NewRefCountedBuffer(1024)

	assert.EqualValues(t, 1, b.RefCount())
	assert.Equal(t, 1024, b.Capacity())
}

func TestRefCountedBufferRetainRelease(t *testing.T) {
	b := iocptest.NewRefCountedBuffer(16)

	assert.EqualValues(t, 2, b.Retain())
	assert.EqualValues(t, 1, b.Release())
}

func TestRefCountedBufferWritesAreVisibleThroughBytes(t *testing.T) {
	b := iocptest.NewRefCountedBuffer(4)
	dst := unsafe.Slice((*byte)(b.MutPointer()), b.Capacity())
	copy(dst, []byte{1, 2, 3, 4})
	b.SetInitializedLen(4)

	assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
}
