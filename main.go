package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectre/config"
	"github.com/pthm-cable/spectre/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run the benchmark loop without graphics")
	mode := flag.String("mode", "sequential", "Initial dispatch mode: sequential or parallel")
	locks := flag.Bool("locks", true, "Start with the mutex-guarded stats protocol")
	workload := flag.Int("workload", -1, "Per-agent workload in ms (-1 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for the results CSV and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for the player walk (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *mode != "sequential" && *mode != "parallel" {
		slog.Error("invalid mode", "mode", *mode)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:       rngSeed,
		Headless:   *headless,
		Parallel:   *mode == "parallel",
		Locks:      *locks,
		WorkloadMS: *workload,
		OutputDir:  *outputDir,
	}

	if *headless {
		// Headless mode - pure CPU benchmark, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless benchmark",
			"seed", rngSeed,
			"mode", *mode,
			"locks", *locks,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Frame()) >= *maxTicks {
				slog.Info("max ticks reached", "frame", g.Frame())
				return
			}
		}
	} else {
		// Graphical mode
		rl.InitWindow(cfg.Derived.ScreenWidth, cfg.Derived.ScreenHeight, "Parallel Ghosts")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		for !rl.WindowShouldClose() && !g.ShouldQuit() {
			g.Update()
			g.Draw()

			if *maxTicks > 0 && int(g.Frame()) >= *maxTicks {
				break
			}
		}
	}
}
