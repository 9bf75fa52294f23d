package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectoredBufferSetInitializedLenDistributesGreedily(t *testing.T) {
	a := NewByteBuffer(4)
	b := NewByteBuffer(4)
	c := NewByteBuffer(4)
	v := NewVectoredBuffer[*ByteBuffer](a, b, c)

	v.SetInitializedLen(6)

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 6, v.Len())
}

func TestVectoredBufferSetInitializedLenExactBoundary(t *testing.T) {
	a := NewByteBuffer(4)
	b := NewByteBuffer(4)
	v := NewVectoredBuffer[*ByteBuffer](a, b)

	v.SetInitializedLen(4)

	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestVectoredBufferSegments(t *testing.T) {
	a := NewByteBuffer(8)
	b := NewByteBuffer(16)
	v := NewVectoredBuffer[*ByteBuffer](a, b)

	segs := v.Segments()
	if assert.Len(t, segs, 2) {
		assert.Equal(t, uint32(8), segs[0].Length)
		assert.Equal(t, uint32(16), segs[1].Length)
	}
}

func TestVectoredBufferSetInitializedLenBeyondCapacityPanics(t *testing.T) {
	a := NewByteBuffer(2)
	v := NewVectoredBuffer[*ByteBuffer](a)
	assert.Panics(t, func() { v.SetInitializedLen(3) })
}
