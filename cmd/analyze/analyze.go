package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// ResultRow is one parsed row of ghost_results.csv.
type ResultRow struct {
	Mode      string
	Locks     bool
	WorkMS    float64
	AvgAIMS   float64
	FPS       float64
	NumGhosts int
	Speedup   float64
	Total     int64
	Workers   int
}

// LoadResults reads the results CSV, skipping rows that fail to parse
// so one corrupt line cannot sink a whole session's data. It returns
// the parsed rows and the number skipped.
func LoadResults(path string) ([]ResultRow, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening results: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"mode", "avg_ai_ms", "fps", "ai_work_ms", "num_ghosts"} {
		if _, ok := col[name]; !ok {
			return nil, 0, fmt.Errorf("results missing column %q", name)
		}
	}

	var rows []ResultRow
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		row, ok := parseRow(record, col)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseRow(record []string, col map[string]int) (ResultRow, bool) {
	get := func(name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var row ResultRow
	var ok bool
	if row.Mode, ok = get("mode"); !ok {
		return row, false
	}
	if row.Mode != "sequential" && row.Mode != "parallel" {
		return row, false
	}

	var err error
	if s, k := get("avg_ai_ms"); k {
		if row.AvgAIMS, err = strconv.ParseFloat(s, 64); err != nil {
			return row, false
		}
	} else {
		return row, false
	}
	if s, k := get("fps"); k {
		if row.FPS, err = strconv.ParseFloat(s, 64); err != nil {
			return row, false
		}
	} else {
		return row, false
	}
	if s, k := get("ai_work_ms"); k {
		if row.WorkMS, err = strconv.ParseFloat(s, 64); err != nil {
			return row, false
		}
	} else {
		return row, false
	}
	if s, k := get("num_ghosts"); k {
		if row.NumGhosts, err = strconv.Atoi(s); err != nil {
			return row, false
		}
	} else {
		return row, false
	}

	// Optional columns; absence or corruption loses detail, not the row.
	if s, k := get("locks_enabled"); k {
		row.Locks, _ = strconv.ParseBool(s)
	}
	if s, k := get("speedup"); k {
		row.Speedup, _ = strconv.ParseFloat(s, 64)
	}
	if s, k := get("total_updates"); k {
		row.Total, _ = strconv.ParseInt(s, 10, 64)
	}
	if s, k := get("active_workers"); k {
		row.Workers, _ = strconv.Atoi(s)
	}
	return row, true
}

// ModeStats aggregates the rows of one dispatch mode.
type ModeStats struct {
	Count    int
	MeanAI   float64
	MinAI    float64
	MaxAI    float64
	StdAI    float64
	MeanFPS  float64
	MinFPS   float64
	MaxFPS   float64
	StdFPS   float64
	MeanWork float64
}

func series(values []float64) (mean, min, max, std float64) {
	mean = stat.Mean(values, nil)
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, min, max, std
}

// Summary is the full analysis of one results file.
type Summary struct {
	Sequential ModeStats
	Parallel   ModeStats
	NumGhosts  int
	Speedup    float64
	Efficiency float64
}

func modeStats(rows []ResultRow, mode string) ModeStats {
	var ai, fps, work []float64
	for _, r := range rows {
		if r.Mode != mode {
			continue
		}
		ai = append(ai, r.AvgAIMS)
		fps = append(fps, r.FPS)
		work = append(work, r.WorkMS)
	}
	s := ModeStats{Count: len(ai)}
	if len(ai) == 0 {
		return s
	}

	s.MeanAI, s.MinAI, s.MaxAI, s.StdAI = series(ai)
	s.MeanFPS, s.MinFPS, s.MaxFPS, s.StdFPS = series(fps)
	s.MeanWork = stat.Mean(work, nil)
	return s
}

// Summarize groups rows by mode and computes the aggregate comparison.
func Summarize(rows []ResultRow) Summary {
	s := Summary{
		Sequential: modeStats(rows, "sequential"),
		Parallel:   modeStats(rows, "parallel"),
	}
	for _, r := range rows {
		if r.NumGhosts > s.NumGhosts {
			s.NumGhosts = r.NumGhosts
		}
	}

	if s.Sequential.Count > 0 && s.Parallel.Count > 0 && s.Parallel.MeanAI > 0 {
		s.Speedup = s.Sequential.MeanAI / s.Parallel.MeanAI
	}
	if s.Speedup > 0 && s.NumGhosts > 0 {
		s.Efficiency = s.Speedup / float64(s.NumGhosts)
	}
	return s
}

// DemoRows synthesizes a plausible session so the tool can demonstrate
// its report without a recorded CSV.
func DemoRows() []ResultRow {
	rng := rand.New(rand.NewSource(7))
	const ghosts = 4
	const work = 80.0

	rows := make([]ResultRow, 0, 120)
	for i := 0; i < 60; i++ {
		rows = append(rows, ResultRow{
			Mode:      "sequential",
			Locks:     true,
			WorkMS:    work,
			AvgAIMS:   work*ghosts + rng.Float64()*30,
			FPS:       2.5 + rng.Float64(),
			NumGhosts: ghosts,
		})
	}
	for i := 0; i < 60; i++ {
		rows = append(rows, ResultRow{
			Mode:      "parallel",
			Locks:     true,
			WorkMS:    work,
			AvgAIMS:   work*1.15 + rng.Float64()*15,
			FPS:       9 + rng.Float64()*2,
			NumGhosts: ghosts,
		})
	}
	return rows
}

// FormatReport renders the summary as the text report.
func FormatReport(s Summary, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ghost AI dispatch analysis\n")
	fmt.Fprintf(&b, "==========================\n")
	fmt.Fprintf(&b, "Source: %s\n\n", source)

	writeMode := func(name string, m ModeStats) {
		fmt.Fprintf(&b, "%s:\n", name)
		if m.Count == 0 {
			fmt.Fprintf(&b, "  no samples\n\n")
			return
		}
		fmt.Fprintf(&b, "  samples:     %d\n", m.Count)
		fmt.Fprintf(&b, "  ai time ms:  mean %.2f  min %.2f  max %.2f  stdev %.2f\n",
			m.MeanAI, m.MinAI, m.MaxAI, m.StdAI)
		fmt.Fprintf(&b, "  fps:         mean %.1f  min %.1f  max %.1f  stdev %.1f\n",
			m.MeanFPS, m.MinFPS, m.MaxFPS, m.StdFPS)
		fmt.Fprintf(&b, "  workload ms: %.0f\n\n", m.MeanWork)
	}
	writeMode("Sequential", s.Sequential)
	writeMode("Parallel", s.Parallel)

	if s.Speedup > 0 {
		fmt.Fprintf(&b, "Speedup:    %.2fx over %d ghosts\n", s.Speedup, s.NumGhosts)
		fmt.Fprintf(&b, "Efficiency: %.0f%% of the theoretical %dx\n",
			s.Efficiency*100, s.NumGhosts)
	} else {
		fmt.Fprintf(&b, "Speedup: not available, need samples from both modes\n")
	}
	return b.String()
}
