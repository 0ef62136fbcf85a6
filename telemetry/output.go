package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/spectre/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir         string
	resultsFile *os.File

	// Track if headers have been written
	resultsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	resultsPath := filepath.Join(dir, "ghost_results.csv")
	f, err := os.Create(resultsPath)
	if err != nil {
		return nil, fmt.Errorf("creating ghost_results.csv: %w", err)
	}
	om.resultsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRecord appends one dispatch record to ghost_results.csv.
func (om *OutputManager) WriteRecord(rec TickRecord) error {
	if om == nil {
		return nil
	}

	records := []TickRecord{rec}

	if !om.resultsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		om.resultsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.resultsFile); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.resultsFile != nil {
		if err := om.resultsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
