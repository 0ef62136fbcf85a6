package telemetry

import (
	"log/slog"
	"time"
)

// TickRecord is one row of the per-dispatch results log. Header names
// are a stable external contract consumed by the analysis tool.
type TickRecord struct {
	Timestamp     string  `csv:"timestamp"`
	Mode          string  `csv:"mode"` // "sequential" or "parallel"
	LocksEnabled  bool    `csv:"locks_enabled"`
	WorkloadMS    int     `csv:"ai_work_ms"`
	AvgAIMS       float64 `csv:"avg_ai_ms"`
	FPS           float64 `csv:"fps"`
	NumGhosts     int     `csv:"num_ghosts"`
	Speedup       float64 `csv:"speedup"`
	TotalUpdates  int64   `csv:"total_updates"`
	ActiveWorkers int     `csv:"active_workers"`
}

// NewTickRecord stamps a record with the current wall-clock time.
func NewTickRecord() TickRecord {
	return TickRecord{Timestamp: time.Now().Format("2006-01-02 15:04:05")}
}

// LogValue implements slog.LogValuer for structured logging.
func (r TickRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", r.Mode),
		slog.Bool("locks_enabled", r.LocksEnabled),
		slog.Int("ai_work_ms", r.WorkloadMS),
		slog.Float64("avg_ai_ms", r.AvgAIMS),
		slog.Float64("fps", r.FPS),
		slog.Float64("speedup", r.Speedup),
		slog.Int64("total_updates", r.TotalUpdates),
	)
}
