package game

import (
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/spectre/components"
	"github.com/pthm-cable/spectre/config"
	"github.com/pthm-cable/spectre/maze"
	"github.com/pthm-cable/spectre/telemetry"
)

// Options configures game creation.
type Options struct {
	Seed       int64
	Headless   bool
	Parallel   bool // initial dispatch mode
	Locks      bool // initial stats protocol
	WorkloadMS int  // per-agent workload; <0 means use config
	OutputDir  string
}

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	grid  *maze.Grid

	// Entity mappers
	ghostMapper  *ecs.Map2[components.Position, components.Ghost]
	ghostFilter  *ecs.Filter2[components.Position, components.Ghost]
	playerMapper *ecs.Map2[components.Position, components.Player]
	posMap       *ecs.Map1[components.Position]
	ghostMap     *ecs.Map1[components.Ghost]
	playerMap    *ecs.Map1[components.Player]

	// Agents in fixed dispatch order, plus the player
	ghosts []ecs.Entity
	player ecs.Entity

	pellets map[maze.Pos]struct{}

	// Concurrency demo state
	stats *SharedStats
	pool  *workerPool

	// Timing telemetry
	timing         *telemetry.TimingWindow
	lastSequential time.Duration
	lastParallel   time.Duration

	// Mode switches
	parallel   bool
	locks      bool
	workloadMS int

	// State
	frame   uint64
	tickSeq uint64 // dispatch sequence counter
	fps     float64
	quit    bool

	output *telemetry.OutputManager
	opts   Options
}

// NewGameWithOptions creates a game with the given options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:        world,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		ghostMapper:  ecs.NewMap2[components.Position, components.Ghost](world),
		ghostFilter:  ecs.NewFilter2[components.Position, components.Ghost](world),
		playerMapper: ecs.NewMap2[components.Position, components.Player](world),
		posMap:       ecs.NewMap1[components.Position](world),
		ghostMap:     ecs.NewMap1[components.Ghost](world),
		playerMap:    ecs.NewMap1[components.Player](world),
		parallel:     opts.Parallel,
		locks:        opts.Locks,
		workloadMS:   cfg.Workload.WorkMS,
		opts:         opts,
	}
	if opts.WorkloadMS >= 0 {
		g.workloadMS = clampWorkload(opts.WorkloadMS, cfg)
	}

	g.grid = maze.Generate(cfg.Maze.Width, cfg.Maze.Height, cfg.Maze.Seed, cfg.Maze.RandomWalls)
	g.stats = NewSharedStats(time.Duration(cfg.Dispatch.RaceDelayMS) * time.Millisecond)
	g.timing = telemetry.NewTimingWindow(cfg.Telemetry.TimingWindow)

	poolSize := min(cfg.Ghosts.Count, runtime.GOMAXPROCS(0))
	g.pool = newWorkerPool(poolSize, cfg.Ghosts.Count, g.grid, g.stats)

	g.spawnEntities(cfg)
	g.resetPellets()

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}

	slog.Info("engine ready",
		"cpu_cores", runtime.GOMAXPROCS(0),
		"pool_size", poolSize,
		"ghosts", cfg.Ghosts.Count,
		"workload_ms", g.workloadMS,
		"mode", g.modeName(),
		"locks", g.locks,
	)

	return g
}

// spawnEntities creates the player and the agents at their start cells.
func (g *Game) spawnEntities(cfg *config.Config) {
	start := g.grid.PlayerStart()
	pos := components.Position{X: start.X, Y: start.Y}
	player := components.Player{DirX: 1}
	g.player = g.playerMapper.NewEntity(&pos, &player)

	starts := maze.StartPositions(g.grid.Width(), g.grid.Height())
	g.ghosts = make([]ecs.Entity, 0, cfg.Ghosts.Count)
	for i := 0; i < cfg.Ghosts.Count; i++ {
		s := starts[i%len(starts)]
		pos := components.Position{X: s.X, Y: s.Y}
		ghost := components.Ghost{Index: i, Name: cfg.Ghosts.Names[i]}
		g.ghosts = append(g.ghosts, g.ghostMapper.NewEntity(&pos, &ghost))
	}
}

// resetPellets rebuilds the pellet layer from the open maze cells.
func (g *Game) resetPellets() {
	cells := g.grid.PelletCells()
	g.pellets = make(map[maze.Pos]struct{}, len(cells))
	start := g.grid.PlayerStart()
	for _, p := range cells {
		if p == start {
			continue
		}
		g.pellets[p] = struct{}{}
	}
}

// ResetGame restores start positions, pellets, shared stats, and timing
// history. The last measured mode durations survive so the speedup
// comparison is not lost on reset.
func (g *Game) ResetGame() {
	start := g.grid.PlayerStart()
	pos := g.posMap.Get(g.player)
	pos.X, pos.Y = start.X, start.Y

	starts := maze.StartPositions(g.grid.Width(), g.grid.Height())
	for i, e := range g.ghosts {
		s := starts[i%len(starts)]
		pos := g.posMap.Get(e)
		pos.X, pos.Y = s.X, s.Y
		gh := g.ghostMap.Get(e)
		gh.LastWorker = 0
		gh.UpdateCount = 0
	}

	g.resetPellets()
	g.stats.Reset()
	g.timing.Reset()
	slog.Info("game reset")
}

// SetParallel switches the dispatch mode. Changing mode resets the
// shared stats so guarded and unguarded runs are not mixed in one
// count.
func (g *Game) SetParallel(parallel bool) {
	if g.parallel == parallel {
		return
	}
	g.parallel = parallel
	g.stats.Reset()
	slog.Info("dispatch mode changed", "mode", g.modeName())
}

// SetLocks switches the stats protocol and resets the shared stats.
func (g *Game) SetLocks(locks bool) {
	if g.locks == locks {
		return
	}
	g.locks = locks
	g.stats.Reset()
	slog.Info("stats protocol changed", "locks", g.locks)
}

// AdjustWorkload steps the per-agent workload by delta milliseconds,
// clamped to the configured range.
func (g *Game) AdjustWorkload(deltaMS int) {
	cfg := config.Cfg()
	g.workloadMS = clampWorkload(g.workloadMS+deltaMS, cfg)
}

func clampWorkload(ms int, cfg *config.Config) int {
	if ms < cfg.Workload.MinMS {
		return cfg.Workload.MinMS
	}
	if ms > cfg.Workload.MaxMS {
		return cfg.Workload.MaxMS
	}
	return ms
}

// Parallel reports the current dispatch mode.
func (g *Game) Parallel() bool { return g.parallel }

// Locks reports the current stats protocol.
func (g *Game) Locks() bool { return g.locks }

// WorkloadMS returns the current per-agent workload in milliseconds.
func (g *Game) WorkloadMS() int { return g.workloadMS }

// PoolSize returns the number of pool workers.
func (g *Game) PoolSize() int { return g.pool.size }

// Frame returns the number of frames processed.
func (g *Game) Frame() uint64 { return g.frame }

// ShouldQuit reports whether a quit was requested via input.
func (g *Game) ShouldQuit() bool { return g.quit }

func (g *Game) modeName() string {
	if g.parallel {
		return "parallel"
	}
	return "sequential"
}

// movePlayer attempts a one-cell move, blocked by walls.
func (g *Game) movePlayer(dx, dy int) {
	pos := g.posMap.Get(g.player)
	nx, ny := pos.X+dx, pos.Y+dy
	pl := g.playerMap.Get(g.player)
	pl.DirX, pl.DirY = dx, dy
	if !g.grid.Passable(nx, ny) {
		return
	}
	pos.X, pos.Y = nx, ny
	delete(g.pellets, maze.Pos{X: nx, Y: ny})
}

// checkCollisions resets the game when an agent reaches the player.
func (g *Game) checkCollisions() {
	target := *g.posMap.Get(g.player)
	query := g.ghostFilter.Query()
	caught := false
	for query.Next() {
		pos, _ := query.Get()
		if *pos == target {
			caught = true
		}
	}
	if caught {
		slog.Info("player caught", "frame", g.frame)
		g.ResetGame()
	}
}

// Unload shuts down the worker pool and closes output files.
func (g *Game) Unload() {
	g.pool.stop()
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close output files", "error", err)
	}
}
