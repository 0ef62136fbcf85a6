package game

import (
	"sync"
	"testing"
	"time"
)

func TestGuardedExactUnderContention(t *testing.T) {
	s := NewSharedStats(time.Millisecond)

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.RecordGuarded(id)
			}
		}(w)
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.TotalUpdates != workers*perWorker {
		t.Errorf("TotalUpdates = %d, want %d", snap.TotalUpdates, workers*perWorker)
	}
	if snap.ActiveWorkers != workers {
		t.Errorf("ActiveWorkers = %d, want %d", snap.ActiveWorkers, workers)
	}
	if snap.RaceEvents != 0 {
		t.Errorf("RaceEvents = %d, want 0", snap.RaceEvents)
	}
}

func TestUnguardedSequentialIsExact(t *testing.T) {
	// With a single caller there is no contention, so even the racy
	// protocol counts correctly.
	s := NewSharedStats(0)
	const n = 50
	for i := 0; i < n; i++ {
		s.RecordUnguarded(1)
	}

	snap := s.Snapshot()
	if snap.TotalUpdates != n {
		t.Errorf("TotalUpdates = %d, want %d", snap.TotalUpdates, n)
	}
	if snap.RaceEvents != n {
		t.Errorf("RaceEvents = %d, want %d", snap.RaceEvents, n)
	}
	if snap.ActiveWorkers != 0 {
		t.Errorf("ActiveWorkers = %d, want 0 (unguarded path skips the id set)", snap.ActiveWorkers)
	}
}

func TestStatsReset(t *testing.T) {
	s := NewSharedStats(0)
	s.RecordGuarded(3)
	s.RecordUnguarded(3)
	s.Reset()

	snap := s.Snapshot()
	if snap.TotalUpdates != 0 || snap.ActiveWorkers != 0 || snap.RaceEvents != 0 {
		t.Errorf("after Reset: %+v, want all zero", snap)
	}
}
