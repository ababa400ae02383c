package metrics

import (
	"sync/atomic"
	"time"
)

// IngestionMetrics aggregates upload timings for lightweight monitoring.
// Process-scoped: constructed once in main and injected where needed, with
// Snapshot as the explicit read accessor.
type IngestionMetrics struct {
	requests        atomic.Int64
	itemsSaved      atomic.Int64
	softFailures    atomic.Int64
	totalDurationMs atomic.Int64
}

// NewIngestionMetrics creates a zeroed metrics aggregate
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{}
}

// Observe records one completed ingestion request
func (m *IngestionMetrics) Observe(d time.Duration, itemsSaved int, softFailure bool) {
	m.requests.Add(1)
	m.itemsSaved.Add(int64(itemsSaved))
	if softFailure {
		m.softFailures.Add(1)
	}
	m.totalDurationMs.Add(d.Milliseconds())
}

// Snapshot is a point-in-time read of the aggregates
type Snapshot struct {
	Requests        int64 `json:"requests"`
	ItemsSaved      int64 `json:"itemsSaved"`
	SoftFailures    int64 `json:"softFailures"`
	TotalDurationMs int64 `json:"totalDurationMs"`
	AvgDurationMs   int64 `json:"avgDurationMs"`
}

// Snapshot returns the current aggregates
func (m *IngestionMetrics) Snapshot() Snapshot {
	s := Snapshot{
		Requests:        m.requests.Load(),
		ItemsSaved:      m.itemsSaved.Load(),
		SoftFailures:    m.softFailures.Load(),
		TotalDurationMs: m.totalDurationMs.Load(),
	}
	if s.Requests > 0 {
		s.AvgDurationMs = s.TotalDurationMs / s.Requests
	}
	return s
}
