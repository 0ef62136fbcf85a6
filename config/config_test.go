package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Maze.Width != 28 || cfg.Maze.Height != 20 {
		t.Errorf("maze = %dx%d, want 28x20", cfg.Maze.Width, cfg.Maze.Height)
	}
	if cfg.Ghosts.Count != 4 {
		t.Errorf("ghost count = %d, want 4", cfg.Ghosts.Count)
	}
	if len(cfg.Ghosts.Names) < cfg.Ghosts.Count {
		t.Errorf("only %d names for %d ghosts", len(cfg.Ghosts.Names), cfg.Ghosts.Count)
	}
	if cfg.Dispatch.TimeoutSec != 5.0 {
		t.Errorf("timeout = %g, want 5.0", cfg.Dispatch.TimeoutSec)
	}
	if want := int32(28 * cfg.Screen.CellSize); cfg.Derived.ScreenWidth != want {
		t.Errorf("ScreenWidth = %d, want %d", cfg.Derived.ScreenWidth, want)
	}
}

func TestLoadUserOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "ghosts:\n  count: 6\nworkload:\n  work_ms: 120\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ghosts.Count != 6 {
		t.Errorf("ghost count = %d, want override 6", cfg.Ghosts.Count)
	}
	if cfg.Workload.WorkMS != 120 {
		t.Errorf("work_ms = %d, want override 120", cfg.Workload.WorkMS)
	}
	// Untouched fields keep their defaults
	if cfg.Maze.Seed != 100 {
		t.Errorf("seed = %d, want default 100", cfg.Maze.Seed)
	}
	// Extra agents get generated names
	if len(cfg.Ghosts.Names) != 6 {
		t.Errorf("names = %d, want 6", len(cfg.Ghosts.Names))
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero ghosts", "ghosts:\n  count: 0\n"},
		{"tiny maze", "maze:\n  width: 3\n  height: 3\n"},
		{"inverted workload bounds", "workload:\n  min_ms: 500\n  max_ms: 10\n"},
		{"bad timeout", "dispatch:\n  timeout_sec: 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Maze.Seed != cfg.Maze.Seed || reloaded.Ghosts.Count != cfg.Ghosts.Count {
		t.Error("round-tripped config differs from original")
	}
}
