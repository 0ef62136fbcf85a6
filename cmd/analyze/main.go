// Command analyze reads a ghost_results.csv produced by the engine and
// writes a per-mode timing comparison report. With no usable input it
// falls back to a built-in demonstration dataset.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	input := flag.String("input", "ghost_results.csv", "Results CSV to analyze")
	output := flag.String("output", "analysis_report.txt", "Report file to write")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	source := *input
	rows, skipped, err := LoadResults(*input)
	if err != nil {
		slog.Warn("falling back to demo data", "input", *input, "error", err)
		rows = DemoRows()
		source = "built-in demo dataset"
	} else if len(rows) == 0 {
		slog.Warn("results file has no usable rows, falling back to demo data", "input", *input)
		rows = DemoRows()
		source = "built-in demo dataset"
	}
	if skipped > 0 {
		slog.Warn("skipped malformed rows", "count", skipped)
	}

	report := FormatReport(Summarize(rows), source)
	fmt.Print(report)

	if err := os.WriteFile(*output, []byte(report), 0644); err != nil {
		slog.Error("failed to write report", "path", *output, "error", err)
		os.Exit(1)
	}
	slog.Info("report written", "path", *output, "rows", len(rows))
}
