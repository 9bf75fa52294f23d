package cblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWaker struct{ woken int }

func (w *countingWaker) Wake() { w.woken++ }

func TestControlBlockWakerReplacementDropsOld(t *testing.T) {
	cb := New()
	first := &countingWaker{}
	second := &countingWaker{}

	cb.SetWaker(first)
	cb.SetWaker(second) // I3: replacing drops the old one

	w := cb.TakeWaker()
	require.Same(t, second, w)
	assert.Nil(t, cb.TakeWaker())
}

func TestControlBlockErrorSlotIsSingleShot(t *testing.T) {
	cb := New()
	assert.Nil(t, cb.TakeError())

	cb.SetError(assertErr{})
	err := cb.TakeError()
	require.Error(t, err)
	assert.Nil(t, cb.TakeError())
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestControlBlockRefcountStartsAtTwo(t *testing.T) {
	cb := New()
	assert.Equal(t, int32(2), cb.Refs())
	assert.Equal(t, int32(1), cb.Release())
	assert.Equal(t, int32(0), cb.Release())
}

func TestRegistryRoundTrip(t *testing.T) {
	cb := New()
	Register(cb)

	got, ok := Unregister(cb.Pointer())
	require.True(t, ok)
	assert.Same(t, cb, got)

	_, ok = Unregister(cb.Pointer())
	assert.False(t, ok)
}

func TestFromOverlappedRecoversControlBlock(t *testing.T) {
	cb := New()
	recovered := FromOverlapped(cb.OverlappedPointer())
	assert.Same(t, cb, recovered)
}

func TestLiveCounts(t *testing.T) {
	before := Live()
	cb := New()
	Register(cb)
	assert.Equal(t, before+1, Live())
	Unregister(cb.Pointer())
	assert.Equal(t, before, Live())
}
