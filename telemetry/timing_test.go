package telemetry

import (
	"testing"
	"time"
)

func TestTimingWindowEmpty(t *testing.T) {
	w := NewTimingWindow(30)
	if got := w.Average(); got != 0 {
		t.Errorf("Average of empty window = %v, want 0", got)
	}
	if got := w.Count(); got != 0 {
		t.Errorf("Count of empty window = %d, want 0", got)
	}
}

func TestTimingWindowAverage(t *testing.T) {
	w := NewTimingWindow(30)
	w.Record(10 * time.Millisecond)
	w.Record(20 * time.Millisecond)
	w.Record(30 * time.Millisecond)

	if got := w.Average(); got != 20*time.Millisecond {
		t.Errorf("Average = %v, want 20ms", got)
	}
	if got := w.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestTimingWindowEviction(t *testing.T) {
	w := NewTimingWindow(3)
	for _, d := range []time.Duration{100, 10, 20, 30} {
		w.Record(d * time.Millisecond)
	}

	// The 100ms sample is evicted; only the last three remain.
	if got := w.Average(); got != 20*time.Millisecond {
		t.Errorf("Average after eviction = %v, want 20ms", got)
	}
	if got := w.Count(); got != 3 {
		t.Errorf("Count = %d, want capacity 3", got)
	}
}

func TestTimingWindowReset(t *testing.T) {
	w := NewTimingWindow(3)
	w.Record(10 * time.Millisecond)
	w.Reset()

	if w.Count() != 0 || w.Average() != 0 {
		t.Errorf("after Reset: count=%d avg=%v, want 0 and 0", w.Count(), w.Average())
	}
}

func TestSpeedup(t *testing.T) {
	cases := []struct {
		name       string
		seq, par   time.Duration
		want       float64
	}{
		{"both measured", 400 * time.Millisecond, 100 * time.Millisecond, 4.0},
		{"parallel slower", 100 * time.Millisecond, 200 * time.Millisecond, 0.5},
		{"sequential missing", 0, 100 * time.Millisecond, 0},
		{"parallel missing", 400 * time.Millisecond, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Speedup(tc.seq, tc.par); got != tc.want {
				t.Errorf("Speedup(%v, %v) = %g, want %g", tc.seq, tc.par, got, tc.want)
			}
		})
	}
}

func TestEfficiency(t *testing.T) {
	if got := Efficiency(3.2, 4); got != 0.8 {
		t.Errorf("Efficiency(3.2, 4) = %g, want 0.8", got)
	}
	if got := Efficiency(0, 4); got != 0 {
		t.Errorf("Efficiency(0, 4) = %g, want 0", got)
	}
	if got := Efficiency(2, 0); got != 0 {
		t.Errorf("Efficiency(2, 0) = %g, want 0", got)
	}
}
