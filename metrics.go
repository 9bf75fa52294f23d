package iocp

import (
	"sync/atomic"
	"time"
)

// LatencyBuckets defines the latency histogram buckets in nanoseconds.
// Buckets cover from 1us to 10s with logarithmic spacing.
var LatencyBuckets = []uint64{
	1_000,          // 1us
	10_000,         // 10us
	100_000,        // 100us
	1_000_000,      // 1ms
	10_000_000,     // 10ms
	100_000_000,    // 100ms
	1_000_000_000,  // 1s
	10_000_000_000, // 10s
}

const numLatencyBuckets = 8

// Metrics tracks operation and completion statistics for a runtime's
// completion port.
type Metrics struct {
	// Submission counters
	SubmitOps    atomic.Uint64 // Total Submit calls issued
	SubmitErrors atomic.Uint64 // Submit calls that failed immediately

	// Completion counters
	CompleteOps    atomic.Uint64 // Total completions dequeued
	CompleteErrors atomic.Uint64 // Completions that carried an error
	CompleteBytes  atomic.Uint64 // Total bytes transferred across completions

	// Outstanding-operation tracking
	OutstandingTotal atomic.Uint64 // Cumulative outstanding-count samples
	OutstandingCount atomic.Uint64 // Number of outstanding-count measurements
	MaxOutstanding   atomic.Int64  // Maximum observed outstanding count

	// Latency histogram buckets (cumulative counts); bucket[i] holds the
	// count of completions with latency <= LatencyBuckets[i].
	TotalLatencyNs atomic.Uint64
	OpCount        atomic.Uint64
	LatencyBuckets [numLatencyBuckets]atomic.Uint64

	StartTime atomic.Int64 // runtime start timestamp (UnixNano)
	StopTime  atomic.Int64 // runtime stop timestamp (UnixNano), 0 while running
}

// NewMetrics creates a new metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// RecordSubmit records a Submit call.
func (m *Metrics) RecordSubmit(success bool) {
	m.SubmitOps.Add(1)
	if !success {
		m.SubmitErrors.Add(1)
	}
}

// RecordComplete records a dequeued completion.
func (m *Metrics) RecordComplete(bytes uint64, latencyNs uint64, success bool) {
	m.CompleteOps.Add(1)
	if success {
		m.CompleteBytes.Add(bytes)
	} else {
		m.CompleteErrors.Add(1)
	}
	m.recordLatency(latencyNs)
}

// RecordOutstanding records the current outstanding-operation count.
func (m *Metrics) RecordOutstanding(n int64) {
	m.OutstandingTotal.Add(uint64(n))
	m.OutstandingCount.Add(1)

	for {
		current := m.MaxOutstanding.Load()
		if n <= current {
			break
		}
		if m.MaxOutstanding.CompareAndSwap(current, n) {
			break
		}
	}
}

func (m *Metrics) recordLatency(latencyNs uint64) {
	m.TotalLatencyNs.Add(latencyNs)
	m.OpCount.Add(1)

	for i, bucket := range LatencyBuckets {
		if latencyNs <= bucket {
			m.LatencyBuckets[i].Add(1)
		}
	}
}

// Stop marks the runtime as stopped.
func (m *Metrics) Stop() {
	m.StopTime.Store(time.Now().UnixNano())
}

// MetricsSnapshot is a point-in-time snapshot of Metrics.
type MetricsSnapshot struct {
	SubmitOps      uint64
	SubmitErrors   uint64
	CompleteOps    uint64
	CompleteErrors uint64
	CompleteBytes  uint64

	AvgOutstanding float64
	MaxOutstanding int64

	AvgLatencyNs uint64
	UptimeNs     uint64

	LatencyP50Ns  uint64
	LatencyP99Ns  uint64
	LatencyP999Ns uint64

	LatencyHistogram [numLatencyBuckets]uint64

	CompletionsPerSec float64
	Bandwidth         float64 // bytes per second
	ErrorRate         float64 // percentage of completions carrying an error
}

// Snapshot creates a point-in-time snapshot of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		SubmitOps:      m.SubmitOps.Load(),
		SubmitErrors:   m.SubmitErrors.Load(),
		CompleteOps:    m.CompleteOps.Load(),
		CompleteErrors: m.CompleteErrors.Load(),
		CompleteBytes:  m.CompleteBytes.Load(),
		MaxOutstanding: m.MaxOutstanding.Load(),
	}

	outstandingTotal := m.OutstandingTotal.Load()
	outstandingCount := m.OutstandingCount.Load()
	if outstandingCount > 0 {
		snap.AvgOutstanding = float64(outstandingTotal) / float64(outstandingCount)
	}

	totalLatencyNs := m.TotalLatencyNs.Load()
	opCount := m.OpCount.Load()
	if opCount > 0 {
		snap.AvgLatencyNs = totalLatencyNs / opCount
	}

	startTime := m.StartTime.Load()
	stopTime := m.StopTime.Load()
	if stopTime > 0 {
		snap.UptimeNs = uint64(stopTime - startTime)
	} else {
		snap.UptimeNs = uint64(time.Now().UnixNano() - startTime)
	}

	if snap.UptimeNs > 0 {
		uptimeSeconds := float64(snap.UptimeNs) / 1e9
		snap.CompletionsPerSec = float64(snap.CompleteOps) / uptimeSeconds
		snap.Bandwidth = float64(snap.CompleteBytes) / uptimeSeconds
	}

	if snap.CompleteOps > 0 {
		snap.ErrorRate = float64(snap.CompleteErrors) / float64(snap.CompleteOps) * 100.0
	}

	for i := 0; i < numLatencyBuckets; i++ {
		snap.LatencyHistogram[i] = m.LatencyBuckets[i].Load()
	}

	if opCount > 0 {
		snap.LatencyP50Ns = m.calculatePercentile(0.50)
		snap.LatencyP99Ns = m.calculatePercentile(0.99)
		snap.LatencyP999Ns = m.calculatePercentile(0.999)
	}

	return snap
}

// calculatePercentile estimates the latency at the given percentile
// (0.0-1.0) using linear interpolation between histogram buckets.
func (m *Metrics) calculatePercentile(percentile float64) uint64 {
	totalOps := m.OpCount.Load()
	if totalOps == 0 {
		return 0
	}

	targetCount := uint64(float64(totalOps) * percentile)

	prevBucket := uint64(0)
	for i, bucket := range LatencyBuckets {
		bucketCount := m.LatencyBuckets[i].Load()
		if bucketCount >= targetCount {
			prevCount := uint64(0)
			if i > 0 {
				prevCount = m.LatencyBuckets[i-1].Load()
			}
			if bucketCount == prevCount {
				return bucket
			}
			fraction := float64(targetCount-prevCount) / float64(bucketCount-prevCount)
			return prevBucket + uint64(fraction*float64(bucket-prevBucket))
		}
		prevBucket = bucket
	}

	return LatencyBuckets[numLatencyBuckets-1]
}

// Reset zeroes all counters, for use between test cases.
func (m *Metrics) Reset() {
	m.SubmitOps.Store(0)
	m.SubmitErrors.Store(0)
	m.CompleteOps.Store(0)
	m.CompleteErrors.Store(0)
	m.CompleteBytes.Store(0)
	m.OutstandingTotal.Store(0)
	m.OutstandingCount.Store(0)
	m.MaxOutstanding.Store(0)
	m.TotalLatencyNs.Store(0)
	m.OpCount.Store(0)
	for i := 0; i < numLatencyBuckets; i++ {
		m.LatencyBuckets[i].Store(0)
	}
	m.StartTime.Store(time.Now().UnixNano())
	m.StopTime.Store(0)
}

// Observer allows pluggable metrics collection, mirroring
// internal/interfaces.Observer for callers that only want the root
// package's API surface.
type Observer interface {
	ObserveSubmit(op string, success bool)
	ObserveComplete(op string, bytes uint64, latencyNs uint64, success bool)
	ObserveOutstanding(n int64)
}

// NoOpObserver discards every observation.
type NoOpObserver struct{}

func (NoOpObserver) ObserveSubmit(string, bool)                 {}
func (NoOpObserver) ObserveComplete(string, uint64, uint64, bool) {}
func (NoOpObserver) ObserveOutstanding(int64)                   {}

// MetricsObserver implements Observer by recording into a Metrics.
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver creates an observer that records into m.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveSubmit(op string, success bool) {
	o.metrics.RecordSubmit(success)
}

func (o *MetricsObserver) ObserveComplete(op string, bytes uint64, latencyNs uint64, success bool) {
	o.metrics.RecordComplete(bytes, latencyNs, success)
}

func (o *MetricsObserver) ObserveOutstanding(n int64) {
	o.metrics.RecordOutstanding(n)
}

var _ Observer = (*MetricsObserver)(nil)
var _ Observer = (*NoOpObserver)(nil)
