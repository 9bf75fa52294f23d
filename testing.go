package iocp

import "sync"

// MockObserver is a call-counting stand-in for Observer, for tests that
// want to assert which operations were reported without wiring up real
// Metrics.
type MockObserver struct {
	mu sync.RWMutex

	submitCalls   map[string]int
	completeCalls map[string]int
	completeBytes map[string]uint64
	outstanding   []int64
}

// NewMockObserver creates an empty MockObserver.
func NewMockObserver() *MockObserver {
	return &MockObserver{
		submitCalls:   make(map[string]int),
		completeCalls: make(map[string]int),
		completeBytes: make(map[string]uint64),
	}
}

func (m *MockObserver) ObserveSubmit(op string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls[op]++
}

func (m *MockObserver) ObserveComplete(op string, bytes uint64, latencyNs uint64, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeCalls[op]++
	m.completeBytes[op] += bytes
}

func (m *MockObserver) ObserveOutstanding(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outstanding = append(m.outstanding, n)
}

// SubmitCount returns how many times ObserveSubmit was called for op.
func (m *MockObserver) SubmitCount(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.submitCalls[op]
}

// CompleteCount returns how many times ObserveComplete was called for op.
func (m *MockObserver) CompleteCount(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.completeCalls[op]
}

// CompleteBytes returns the cumulative bytes reported for op.
func (m *MockObserver) CompleteBytes(op string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.completeBytes[op]
}

// OutstandingSamples returns every value passed to ObserveOutstanding, in order.
func (m *MockObserver) OutstandingSamples() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int64, len(m.outstanding))
	copy(out, m.outstanding)
	return out
}

// Reset clears all recorded calls.
func (m *MockObserver) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls = make(map[string]int)
	m.completeCalls = make(map[string]int)
	m.completeBytes = make(map[string]uint64)
	m.outstanding = nil
}

var _ Observer = (*MockObserver)(nil)
