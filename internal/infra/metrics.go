package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight in-process counters for estimate calls.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	estimatesTotal   atomic.Uint64
	marketNotFound   atomic.Uint64
	invalidInput     atomic.Uint64
	invalidCondition atomic.Uint64
	otherErrors      atomic.Uint64

	// Latency tracking
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordEstimate records a successful estimate with latency.
func (m *Metrics) RecordEstimate(latencyNs int64) {
	m.estimatesTotal.Add(1)
	m.recordLatency(latencyNs)
}

// RecordError records a failed estimate by kind (see domain.ErrorKind).
func (m *Metrics) RecordError(kind string, latencyNs int64) {
	switch kind {
	case "market_not_found":
		m.marketNotFound.Add(1)
	case "invalid_input":
		m.invalidInput.Add(1)
	case "invalid_condition":
		m.invalidCondition.Add(1)
	default:
		m.otherErrors.Add(1)
	}
	m.recordLatency(latencyNs)
}

func (m *Metrics) recordLatency(latencyNs int64) {
	m.latencySumNs.Add(latencyNs)
	m.latencyCount.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	EstimatesTotal   uint64
	MarketNotFound   uint64
	InvalidInput     uint64
	InvalidCondition uint64
	OtherErrors      uint64
	AvgLatencyNs     int64
	Timestamp        time.Time
}

// ErrorsTotal sums every error counter
func (s MetricsSnapshot) ErrorsTotal() uint64 {
	return s.MarketNotFound + s.InvalidInput + s.InvalidCondition + s.OtherErrors
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		EstimatesTotal:   m.estimatesTotal.Load(),
		MarketNotFound:   m.marketNotFound.Load(),
		InvalidInput:     m.invalidInput.Load(),
		InvalidCondition: m.invalidCondition.Load(),
		OtherErrors:      m.otherErrors.Load(),
		AvgLatencyNs:     avgLatency,
		Timestamp:        time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.estimatesTotal.Store(0)
	m.marketNotFound.Store(0)
	m.invalidInput.Store(0)
	m.invalidCondition.Store(0)
	m.otherErrors.Store(0)
	m.latencySumNs.Store(0)
	m.latencyCount.Store(0)
}
