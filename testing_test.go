package iocp

import "testing"

func TestMockObserverTracksSubmitAndComplete(t *testing.T) {
	m := NewMockObserver()

	m.ObserveSubmit("ReadAt", true)
	m.ObserveSubmit("ReadAt", true)
	m.ObserveComplete("ReadAt", 512, 1000, true)
	m.ObserveOutstanding(3)

	if got := m.SubmitCount("ReadAt"); got != 2 {
		t.Errorf("expected 2 submit calls, got %d", got)
	}
	if got := m.CompleteCount("ReadAt"); got != 1 {
		t.Errorf("expected 1 complete call, got %d", got)
	}
	if got := m.CompleteBytes("ReadAt"); got != 512 {
		t.Errorf("expected 512 bytes, got %d", got)
	}
	samples := m.OutstandingSamples()
	if len(samples) != 1 || samples[0] != 3 {
		t.Errorf("expected outstanding samples [3], got %v", samples)
	}
}

func TestMockObserverReset(t *testing.T) {
	m := NewMockObserver()
	m.ObserveSubmit("WriteAt", true)
	m.Reset()

	if got := m.SubmitCount("WriteAt"); got != 0 {
		t.Errorf("expected 0 after reset, got %d", got)
	}
}
