package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/spectre/config"
	"github.com/pthm-cable/spectre/maze"
	"github.com/pthm-cable/spectre/telemetry"
)

// Update runs one graphical frame: input, the periodic AI dispatch, and
// collision handling.
func (g *Game) Update() {
	g.handleInput()
	g.frame++

	every := uint64(config.Cfg().Ghosts.UpdateEvery)
	if every < 1 {
		every = 1
	}
	if g.frame%every == 0 {
		g.updateGhosts()
	}

	g.checkCollisions()
}

// UpdateHeadless runs one benchmark tick without graphics. The player
// random-walks so pathfinding targets vary, and the AI dispatch runs
// every tick.
func (g *Game) UpdateHeadless() {
	g.wanderPlayer()
	g.frame++

	start := time.Now()
	g.updateGhosts()
	if elapsed := time.Since(start); elapsed > 0 {
		g.fps = float64(time.Second) / float64(elapsed)
	}

	g.checkCollisions()
}

// wanderPlayer moves the player to a random open neighbor cell.
func (g *Game) wanderPlayer() {
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	pos := g.posMap.Get(g.player)

	open := make([][2]int, 0, 4)
	for _, d := range dirs {
		if g.grid.Passable(pos.X+d[0], pos.Y+d[1]) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return
	}
	d := open[g.rng.Intn(len(open))]
	g.movePlayer(d[0], d[1])
}

// updateGhosts runs one AI dispatch: snapshot agent and target
// positions, run every agent's update in the selected mode, apply the
// completed results in agent order, and record the dispatch duration.
func (g *Game) updateGhosts() {
	cfg := config.Cfg()

	g.tickSeq++
	seq := g.tickSeq

	// Phase A: snapshot positions (single-threaded)
	playerPos := g.posMap.Get(g.player)
	target := maze.Pos{X: playerPos.X, Y: playerPos.Y}
	work := time.Duration(g.workloadMS) * time.Millisecond

	tasks := make([]agentTask, len(g.ghosts))
	for i, e := range g.ghosts {
		pos := g.posMap.Get(e)
		tasks[i] = agentTask{
			seq:    seq,
			agent:  i,
			start:  maze.Pos{X: pos.X, Y: pos.Y},
			target: target,
			work:   work,
			locked: g.locks,
		}
	}

	// Phase B: compute, timed
	start := time.Now()
	var results []TaskResult
	if g.parallel {
		timeout := time.Duration(cfg.Dispatch.TimeoutSec * float64(time.Second))
		results = g.pool.runTick(seq, tasks, timeout)
	} else {
		results = make([]TaskResult, len(tasks))
		for i, t := range tasks {
			next := runUpdate(g.grid, g.stats, t, 0)
			results[i] = TaskResult{Next: next, OK: true}
		}
	}
	elapsed := time.Since(start)

	// Phase C: apply completed results in agent order
	for i, r := range results {
		if !r.OK {
			continue
		}
		pos := g.posMap.Get(g.ghosts[i])
		pos.X, pos.Y = r.Next.X, r.Next.Y
		gh := g.ghostMap.Get(g.ghosts[i])
		gh.LastWorker = r.Worker
		gh.UpdateCount++
	}

	g.timing.Record(elapsed)
	if g.parallel {
		g.lastParallel = elapsed
	} else {
		g.lastSequential = elapsed
	}

	g.logRecord()
}

// logRecord appends one dispatch row to the results CSV.
func (g *Game) logRecord() {
	stats := g.stats.Snapshot()
	rec := telemetry.NewTickRecord()
	rec.Mode = g.modeName()
	rec.LocksEnabled = g.locks
	rec.WorkloadMS = g.workloadMS
	rec.AvgAIMS = float64(g.timing.Average()) / float64(time.Millisecond)
	rec.FPS = g.fps
	rec.NumGhosts = len(g.ghosts)
	rec.Speedup = telemetry.Speedup(g.lastSequential, g.lastParallel)
	rec.TotalUpdates = stats.TotalUpdates
	rec.ActiveWorkers = stats.ActiveWorkers

	if err := g.output.WriteRecord(rec); err != nil {
		slog.Warn("failed to write results row", "error", err)
	}
}
