package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/op"
)

// pendingDescriptor starts pending and only resolves once the test tells it
// to, by writing its result into cb directly and waking it — standing in
// for the poller that would otherwise do this off a real completion packet.
type pendingDescriptor struct {
	bytes    uint32
	partialN uint32
}

func (d *pendingDescriptor) Submit(handle plat.Handle, cb *cblock.ControlBlock) (op.Outcome, uint32, error) {
	return op.StartedPending, 0, nil
}

func (d *pendingDescriptor) OnPartial(n uint32) { d.partialN = n }

func (d *pendingDescriptor) Finalize(n uint32, err error) (int, int) {
	if err != nil {
		return 0, 0
	}
	return int(n), 1
}

// TestFuturePollPendingThenWakesToFinished drives the Pending branch of
// Poll directly: the first Poll submits and parks without a waker signal,
// a second Poll before any wake still reports not-ready, and only once the
// stored waker fires (the seed scenario 2 wake transition) does a third
// Poll observe the completion and resolve.
func TestFuturePollPendingThenWakesToFinished(t *testing.T) {
	desc := &pendingDescriptor{bytes: 7}
	fut := New[int, int](0, nil, desc)

	ready, _, _, err := fut.Poll()
	require.False(t, ready)
	require.NoError(t, err)
	assert.Equal(t, pending, fut.state)

	ready, _, _, err = fut.Poll()
	require.False(t, ready)
	require.NoError(t, err)
	assert.Equal(t, pending, fut.state)

	fut.cb.SetBytes(7)
	fut.waker.Wake()

	ready, o, b, err := fut.Poll()
	require.True(t, ready)
	assert.NoError(t, err)
	assert.Equal(t, 7, o)
	assert.Equal(t, 1, b)
	assert.EqualValues(t, 7, desc.partialN)
	assert.Equal(t, finished, fut.state)
}

// TestFuturePollPendingWithCompletionErrorStillFinalizes covers the same
// wake transition but with a completion-time error stored on the control
// block, mirroring a cancelled-and-drained or kernel-failed operation
// surfacing through TakeError rather than Submit's own return.
func TestFuturePollPendingWithCompletionErrorStillFinalizes(t *testing.T) {
	desc := &pendingDescriptor{}
	fut := New[int, int](0, nil, desc)

	ready, _, _, err := fut.Poll()
	require.False(t, ready)
	require.NoError(t, err)

	boom := errors.New("boom")
	fut.cb.SetError(boom)
	fut.waker.Wake()

	ready, o, _, err := fut.Poll()
	require.True(t, ready)
	assert.Same(t, boom, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, finished, fut.state)
}

// TestFutureCancelWhilePendingMovesToCancellingAndDropsWaker drives
// Cancel's pending branch directly: after Submit parks the future, Cancel
// transitions it to cancelling and clears the stored waker so a completion
// packet that still arrives later wakes nothing.
func TestFutureCancelWhilePendingMovesToCancellingAndDropsWaker(t *testing.T) {
	desc := &pendingDescriptor{}
	fut := New[int, int](0, nil, desc)

	ready, _, _, _ := fut.Poll()
	require.False(t, ready)
	require.Equal(t, pending, fut.state)

	fut.Cancel()

	assert.Equal(t, cancelling, fut.state)
	assert.Nil(t, fut.cb.TakeWaker())
}

// TestFuturePollWhileCancellingStaysNotReady covers Poll's cancelling
// branch: once cancelled, further polls report not-ready forever rather
// than panicking or resolving on the stale descriptor.
func TestFuturePollWhileCancellingStaysNotReady(t *testing.T) {
	desc := &pendingDescriptor{}
	fut := New[int, int](0, nil, desc)
	_, _, _, _ = fut.Poll()
	fut.Cancel()

	ready, o, b, err := fut.Poll()
	assert.False(t, ready)
	assert.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, 0, b)
}
