// Package telemetry provides dispatch timing collection and CSV output.
package telemetry

import "time"

// TimingWindow keeps the most recent dispatch durations in a fixed-size
// ring buffer and reports their rolling average.
type TimingWindow struct {
	samples    []time.Duration
	writeIndex int
	count      int
}

// NewTimingWindow creates a window holding up to capacity samples.
func NewTimingWindow(capacity int) *TimingWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &TimingWindow{samples: make([]time.Duration, capacity)}
}

// Record adds a dispatch duration, evicting the oldest sample once the
// window is full.
func (w *TimingWindow) Record(d time.Duration) {
	w.samples[w.writeIndex] = d
	w.writeIndex = (w.writeIndex + 1) % len(w.samples)
	if w.count < len(w.samples) {
		w.count++
	}
}

// Average returns the mean of the retained samples, 0 when empty.
func (w *TimingWindow) Average() time.Duration {
	if w.count == 0 {
		return 0
	}
	var sum time.Duration
	if w.count < len(w.samples) {
		for _, s := range w.samples[:w.count] {
			sum += s
		}
	} else {
		for _, s := range w.samples {
			sum += s
		}
	}
	return sum / time.Duration(w.count)
}

// Count returns the number of retained samples.
func (w *TimingWindow) Count() int {
	return w.count
}

// Reset discards all samples.
func (w *TimingWindow) Reset() {
	w.writeIndex = 0
	w.count = 0
}

// Speedup returns sequential divided by parallel, or 0 unless both
// modes have a measured duration.
func Speedup(sequential, parallel time.Duration) float64 {
	if sequential <= 0 || parallel <= 0 {
		return 0
	}
	return float64(sequential) / float64(parallel)
}

// Efficiency returns speedup divided by the pool size, or 0 when either
// input is unusable.
func Efficiency(speedup float64, poolSize int) float64 {
	if speedup <= 0 || poolSize < 1 {
		return 0
	}
	return speedup / float64(poolSize)
}
