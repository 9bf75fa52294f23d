package future_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windiocp/iocp/future"
	"github.com/windiocp/iocp/internal/cblock"
	"github.com/windiocp/iocp/internal/plat"
	"github.com/windiocp/iocp/op"
)

// fakeDescriptor resolves synchronously, either to success or to a fixed
// error, so these tests never touch the completion port.
type fakeDescriptor struct {
	submitErr error
	bytes     uint32
	partialN  uint32
}

func (f *fakeDescriptor) Submit(handle plat.Handle, cb *cblock.ControlBlock) (op.Outcome, uint32, error) {
	if f.submitErr != nil {
		return op.SubmissionFailed, 0, f.submitErr
	}
	return op.CompletedSynchronously, f.bytes, nil
}

func (f *fakeDescriptor) OnPartial(n uint32) { f.partialN = n }

func (f *fakeDescriptor) Finalize(n uint32, err error) (int, int) {
	if err != nil {
		return 0, 0
	}
	return int(n), 1
}

func TestFuturePollResolvesSynchronousSuccess(t *testing.T) {
	desc := &fakeDescriptor{bytes: 12}
	fut := future.New[int, int](0, nil, desc)

	ready, o, b, err := fut.Poll()
	assert.True(t, ready)
	assert.NoError(t, err)
	assert.Equal(t, 12, o)
	assert.Equal(t, 1, b)
	assert.EqualValues(t, 12, desc.partialN)
}

func TestFuturePollResolvesSynchronousFailure(t *testing.T) {
	desc := &fakeDescriptor{submitErr: errors.New("boom")}
	fut := future.New[int, int](0, nil, desc)

	ready, o, _, err := fut.Poll()
	assert.True(t, ready)
	assert.Error(t, err)
	assert.Equal(t, 0, o)
}

func TestFutureAwaitReturnsImmediatelyOnSynchronousCompletion(t *testing.T) {
	desc := &fakeDescriptor{bytes: 4}
	fut := future.New[int, int](0, nil, desc)

	o, b, err := fut.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4, o)
	assert.Equal(t, 1, b)
}

func TestFutureCancelOnNonPendingFutureIsNoop(t *testing.T) {
	desc := &fakeDescriptor{bytes: 1}
	fut := future.New[int, int](0, nil, desc)
	_, _, _, _ = fut.Poll()

	assert.NotPanics(t, func() { fut.Cancel() })
}
