package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `timestamp,mode,locks_enabled,ai_work_ms,avg_ai_ms,fps,num_ghosts,speedup,total_updates,active_workers
2026-08-26 10:00:00,sequential,true,80,320.0,3.0,4,0,4,1
2026-08-26 10:00:01,sequential,true,80,340.0,2.8,4,0,8,1
2026-08-26 10:00:02,parallel,true,80,100.0,9.5,4,3.3,12,4
2026-08-26 10:00:03,parallel,true,80,110.0,9.0,4,3.1,16,4
garbage line that is not a row at all
2026-08-26 10:00:04,parallel,true,80,not-a-number,9.0,4,3.1,20,4
`

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghost_results.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadResultsSkipsMalformed(t *testing.T) {
	rows, skipped, err := LoadResults(writeTestCSV(t))
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("got %d rows, want 4", len(rows))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestLoadResultsMissingFile(t *testing.T) {
	if _, _, err := LoadResults(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSummarize(t *testing.T) {
	rows, _, err := LoadResults(writeTestCSV(t))
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(rows)

	if s.Sequential.Count != 2 || s.Parallel.Count != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", s.Sequential.Count, s.Parallel.Count)
	}
	if math.Abs(s.Sequential.MeanAI-330) > 1e-9 {
		t.Errorf("sequential mean = %g, want 330", s.Sequential.MeanAI)
	}
	if s.Sequential.MinAI != 320 || s.Sequential.MaxAI != 340 {
		t.Errorf("sequential min/max = %g/%g, want 320/340", s.Sequential.MinAI, s.Sequential.MaxAI)
	}
	if math.Abs(s.Parallel.MeanAI-105) > 1e-9 {
		t.Errorf("parallel mean = %g, want 105", s.Parallel.MeanAI)
	}
	if math.Abs(s.Parallel.MeanFPS-9.25) > 1e-9 {
		t.Errorf("parallel mean fps = %g, want 9.25", s.Parallel.MeanFPS)
	}
	if s.Parallel.MinFPS != 9.0 || s.Parallel.MaxFPS != 9.5 {
		t.Errorf("parallel fps min/max = %g/%g, want 9/9.5", s.Parallel.MinFPS, s.Parallel.MaxFPS)
	}
	if want := 330.0 / 105.0; math.Abs(s.Speedup-want) > 1e-9 {
		t.Errorf("speedup = %g, want %g", s.Speedup, want)
	}
	if want := (330.0 / 105.0) / 4; math.Abs(s.Efficiency-want) > 1e-9 {
		t.Errorf("efficiency = %g, want %g", s.Efficiency, want)
	}
	if s.NumGhosts != 4 {
		t.Errorf("NumGhosts = %d, want 4", s.NumGhosts)
	}
}

func TestSummarizeSingleMode(t *testing.T) {
	rows := []ResultRow{
		{Mode: "sequential", AvgAIMS: 300, FPS: 3, WorkMS: 80, NumGhosts: 4},
	}
	s := Summarize(rows)
	if s.Speedup != 0 {
		t.Errorf("Speedup = %g with one mode, want 0", s.Speedup)
	}
	if s.Sequential.StdAI != 0 {
		t.Errorf("StdAI = %g for a single sample, want 0", s.Sequential.StdAI)
	}
}

func TestDemoRowsProduceFullReport(t *testing.T) {
	s := Summarize(DemoRows())
	if s.Sequential.Count == 0 || s.Parallel.Count == 0 {
		t.Fatal("demo dataset missing a mode")
	}
	if s.Speedup <= 1 {
		t.Errorf("demo speedup = %g, want > 1", s.Speedup)
	}

	report := FormatReport(s, "demo")
	for _, want := range []string{"Sequential", "Parallel", "Speedup", "Efficiency"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q section", want)
		}
	}
}
