package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestIngestionMetrics_Observe(t *testing.T) {
	m := NewIngestionMetrics()

	m.Observe(100*time.Millisecond, 5, false)
	m.Observe(300*time.Millisecond, 0, true)

	snap := m.Snapshot()

	if snap.Requests != 2 {
		t.Errorf("requests = %d, want 2", snap.Requests)
	}
	if snap.ItemsSaved != 5 {
		t.Errorf("itemsSaved = %d, want 5", snap.ItemsSaved)
	}
	if snap.SoftFailures != 1 {
		t.Errorf("softFailures = %d, want 1", snap.SoftFailures)
	}
	if snap.TotalDurationMs != 400 {
		t.Errorf("totalDurationMs = %d, want 400", snap.TotalDurationMs)
	}
	if snap.AvgDurationMs != 200 {
		t.Errorf("avgDurationMs = %d, want 200", snap.AvgDurationMs)
	}
}

func TestIngestionMetrics_EmptySnapshot(t *testing.T) {
	snap := NewIngestionMetrics().Snapshot()

	if snap.Requests != 0 || snap.AvgDurationMs != 0 {
		t.Errorf("expected zeroed snapshot, got %+v", snap)
	}
}

func TestIngestionMetrics_Concurrent(t *testing.T) {
	m := NewIngestionMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Observe(10*time.Millisecond, 2, false)
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if snap.Requests != 50 {
		t.Errorf("requests = %d, want 50", snap.Requests)
	}
	if snap.ItemsSaved != 100 {
		t.Errorf("itemsSaved = %d, want 100", snap.ItemsSaved)
	}
}
