package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pthm-cable/spectre/maze"
)

// agentTask is one agent's AI request for a single dispatch.
type agentTask struct {
	seq    uint64 // dispatch sequence, used to discard stale results
	agent  int    // index into the tick's agent order
	start  maze.Pos
	target maze.Pos
	work   time.Duration
	locked bool
}

// agentResult is a completed agent update.
type agentResult struct {
	seq    uint64
	agent  int
	next   maze.Pos
	worker int
}

// TaskResult is one agent's outcome for a dispatch, in agent order.
// OK is false for agents whose worker missed the deadline.
type TaskResult struct {
	Next   maze.Pos
	Worker int
	OK     bool
}

// workerPool holds a fixed set of goroutines reused across dispatches.
// Workers are numbered 1..size; id 0 is reserved for the control
// goroutine running the sequential path.
type workerPool struct {
	size  int
	grid  *maze.Grid
	stats *SharedStats

	tasks   chan agentTask
	results chan agentResult
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// newWorkerPool starts size persistent workers. agents is the number of
// tasks per dispatch and bounds the channel capacities so a timed-out
// dispatch can never wedge a worker on a full results channel.
func newWorkerPool(size, agents int, grid *maze.Grid, stats *SharedStats) *workerPool {
	p := &workerPool{
		size:    size,
		grid:    grid,
		stats:   stats,
		tasks:   make(chan agentTask, agents),
		results: make(chan agentResult, 2*agents),
		stopCh:  make(chan struct{}),
	}
	for i := 1; i <= size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// worker runs in a goroutine, processing tasks until stopped.
func (p *workerPool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			next := runUpdate(p.grid, p.stats, t, id)
			p.results <- agentResult{seq: t.seq, agent: t.agent, next: next, worker: id}
		}
	}
}

// runUpdate performs one agent update: burn the workload, find the next
// step toward the target, and apply the selected stats protocol. It is
// shared by pool workers and the sequential path.
func runUpdate(grid *maze.Grid, stats *SharedStats, t agentTask, workerID int) maze.Pos {
	Burn(t.work)
	next := grid.NextStep(t.start, t.target)
	if t.locked {
		stats.RecordGuarded(workerID)
	} else {
		stats.RecordUnguarded(workerID)
	}
	return next
}

// runTick submits one task per agent and collects results until all
// arrive or the timeout fires. Stragglers keep running on their workers
// but their late results are discarded by the next dispatch.
func (p *workerPool) runTick(seq uint64, tasks []agentTask, timeout time.Duration) []TaskResult {
	p.drainStale()

	for _, t := range tasks {
		p.tasks <- t
	}

	out := make([]TaskResult, len(tasks))
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	pending := len(tasks)
	for pending > 0 {
		select {
		case r := <-p.results:
			if r.seq != seq {
				// Straggler from a timed-out dispatch
				continue
			}
			out[r.agent] = TaskResult{Next: r.next, Worker: r.worker, OK: true}
			pending--
		case <-timer.C:
			slog.Warn("parallel dispatch timed out",
				"pending", pending,
				"agents", len(tasks),
				"timeout", timeout,
			)
			return out
		}
	}
	return out
}

// drainStale discards results left over from an earlier timed-out
// dispatch so they cannot be mistaken for current ones.
func (p *workerPool) drainStale() {
	for {
		select {
		case <-p.results:
		default:
			return
		}
	}
}

// stop signals all workers to exit and waits for them. In-flight
// updates finish first, so shared stats stay consistent.
func (p *workerPool) stop() {
	close(p.stopCh)
	p.wg.Wait()
}
