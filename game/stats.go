package game

import (
	"sync"
	"sync/atomic"
	"time"
)

// SharedStats is the store every completed AI update writes to. It
// exists to demonstrate the difference between a mutex-guarded update
// protocol and a deliberately racy one, so the unguarded path must stay
// racy: it reads the counter, pauses, and writes it back with no
// synchronization, losing updates under contention.
type SharedStats struct {
	mu           sync.Mutex
	totalUpdates int64
	workerIDs    map[int]struct{}

	// raceEvents counts unguarded write attempts. It is atomic so the
	// attempt count stays exact even while totalUpdates corrupts.
	raceEvents atomic.Int64

	raceDelay time.Duration
}

// NewSharedStats creates an empty store. raceDelay is the pause between
// the read and the write in the unguarded protocol; longer delays make
// lost updates near-certain under parallel dispatch.
func NewSharedStats(raceDelay time.Duration) *SharedStats {
	return &SharedStats{
		workerIDs: make(map[int]struct{}),
		raceDelay: raceDelay,
	}
}

// RecordGuarded applies one update under the mutex: increments the
// total and records the worker in the id set.
func (s *SharedStats) RecordGuarded(workerID int) {
	s.mu.Lock()
	s.totalUpdates++
	s.workerIDs[workerID] = struct{}{}
	s.mu.Unlock()
}

// RecordUnguarded applies one update with the racy read/delay/write
// sequence. The worker id set is not touched, only the guarded
// protocol maintains it.
func (s *SharedStats) RecordUnguarded(workerID int) {
	s.raceEvents.Add(1)
	current := s.totalUpdates
	time.Sleep(s.raceDelay)
	s.totalUpdates = current + 1
}

// Reset clears all counters and the worker id set.
func (s *SharedStats) Reset() {
	s.mu.Lock()
	s.totalUpdates = 0
	s.workerIDs = make(map[int]struct{})
	s.mu.Unlock()
	s.raceEvents.Store(0)
}

// StatsSnapshot is a point-in-time copy of the store.
type StatsSnapshot struct {
	TotalUpdates  int64
	ActiveWorkers int
	RaceEvents    int64
}

// Snapshot returns a copy of the current counters. The total read here
// can be mid-corruption while unguarded workers run; that is the value
// the demo wants to display.
func (s *SharedStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	snap := StatsSnapshot{
		TotalUpdates:  s.totalUpdates,
		ActiveWorkers: len(s.workerIDs),
	}
	s.mu.Unlock()
	snap.RaceEvents = s.raceEvents.Load()
	return snap
}
