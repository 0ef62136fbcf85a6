//go:build !race

package game

import (
	"sync"
	"testing"
	"time"
)

// These tests exercise the intentionally unsynchronized protocol under
// contention, which the race detector would rightly flag. They are
// excluded from -race runs.

func TestUnguardedAttemptsStayExact(t *testing.T) {
	s := NewSharedStats(time.Millisecond)

	const workers = 8
	const perWorker = 25
	const attempts = workers * perWorker

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.RecordUnguarded(id)
			}
		}(w)
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.RaceEvents != attempts {
		t.Errorf("RaceEvents = %d, want exactly %d", snap.RaceEvents, attempts)
	}
	// The racy counter can only lose updates, never invent them.
	if snap.TotalUpdates > attempts {
		t.Errorf("TotalUpdates = %d, exceeds %d attempts", snap.TotalUpdates, attempts)
	}
	if snap.TotalUpdates < 1 {
		t.Errorf("TotalUpdates = %d, want at least 1", snap.TotalUpdates)
	}
}
