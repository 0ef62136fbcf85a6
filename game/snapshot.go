package game

import (
	"time"

	"github.com/pthm-cable/spectre/maze"
	"github.com/pthm-cable/spectre/telemetry"
)

// GhostState is one agent's state in a Snapshot.
type GhostState struct {
	Pos         maze.Pos
	Name        string
	LastWorker  int
	UpdateCount int
}

// Snapshot is the read-only view of the engine handed to the renderer.
// Speedup and Efficiency are zero until both modes have a measured
// dispatch.
type Snapshot struct {
	Parallel   bool
	Locks      bool
	WorkloadMS int
	PoolSize   int

	AvgAITime      time.Duration
	FPS            float64
	LastSequential time.Duration
	LastParallel   time.Duration
	Speedup        float64
	Efficiency     float64

	Stats  StatsSnapshot
	Ghosts []GhostState
	Player maze.Pos
}

// Snapshot captures the current engine state.
func (g *Game) Snapshot() Snapshot {
	speedup := telemetry.Speedup(g.lastSequential, g.lastParallel)

	snap := Snapshot{
		Parallel:       g.parallel,
		Locks:          g.locks,
		WorkloadMS:     g.workloadMS,
		PoolSize:       g.pool.size,
		AvgAITime:      g.timing.Average(),
		FPS:            g.fps,
		LastSequential: g.lastSequential,
		LastParallel:   g.lastParallel,
		Speedup:        speedup,
		Efficiency:     telemetry.Efficiency(speedup, g.pool.size),
		Stats:          g.stats.Snapshot(),
		Ghosts:         make([]GhostState, 0, len(g.ghosts)),
	}

	pos := g.posMap.Get(g.player)
	snap.Player = maze.Pos{X: pos.X, Y: pos.Y}

	for _, e := range g.ghosts {
		pos := g.posMap.Get(e)
		gh := g.ghostMap.Get(e)
		snap.Ghosts = append(snap.Ghosts, GhostState{
			Pos:         maze.Pos{X: pos.X, Y: pos.Y},
			Name:        gh.Name,
			LastWorker:  gh.LastWorker,
			UpdateCount: gh.UpdateCount,
		})
	}
	return snap
}
