package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectre/config"
	"github.com/pthm-cable/spectre/maze"
)

var (
	wallColor   = rl.NewColor(33, 33, 200, 255)
	pelletColor = rl.NewColor(255, 200, 120, 255)
	playerColor = rl.NewColor(255, 220, 0, 255)
	panelColor  = rl.NewColor(18, 18, 18, 255)

	ghostColors = []rl.Color{
		rl.NewColor(255, 60, 60, 255),   // Blinky
		rl.NewColor(255, 140, 220, 255), // Pinky
		rl.NewColor(80, 220, 255, 255),  // Inky
		rl.NewColor(255, 170, 60, 255),  // Clyde
		rl.NewColor(170, 100, 255, 255),
		rl.NewColor(100, 255, 140, 255),
	}
)

// Draw renders the maze, entities, and info panel for one frame.
func (g *Game) Draw() {
	cfg := config.Cfg()
	cell := int32(cfg.Screen.CellSize)

	// Mouth animation is render-only state
	pl := g.playerMap.Get(g.player)
	pl.MouthPhase += rl.GetFrameTime() * 8

	snap := g.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawMaze(cell)
	g.drawPellets(cell)
	drawPlayer(snap.Player, pl.DirX, pl.DirY, pl.MouthPhase, cell)
	for i, gs := range snap.Ghosts {
		drawGhost(gs, ghostColors[i%len(ghostColors)], cell)
	}
	g.drawPanel(snap, cfg)

	rl.EndDrawing()
}

func (g *Game) drawMaze(cell int32) {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			if g.grid.At(x, y) == maze.Wall {
				rl.DrawRectangle(int32(x)*cell, int32(y)*cell, cell, cell, wallColor)
			}
		}
	}
}

func (g *Game) drawPellets(cell int32) {
	for p := range g.pellets {
		cx := int32(p.X)*cell + cell/2
		cy := int32(p.Y)*cell + cell/2
		rl.DrawCircle(cx, cy, float32(cell)/10, pelletColor)
	}
}

func drawPlayer(pos maze.Pos, dirX, dirY int, phase float32, cell int32) {
	cx := int32(pos.X)*cell + cell/2
	cy := int32(pos.Y)*cell + cell/2
	r := float32(cell) * 0.4

	rl.DrawCircle(cx, cy, r, playerColor)

	// Mouth wedge opens and closes with the animation phase, pointing
	// in the movement direction.
	open := float32(math.Abs(math.Sin(float64(phase)))) * 0.5
	if open < 0.05 {
		return
	}
	heading := float32(math.Atan2(float64(dirY), float64(dirX)))
	c := rl.Vector2{X: float32(cx), Y: float32(cy)}
	a := rl.Vector2{
		X: float32(cx) + r*float32(math.Cos(float64(heading-open))),
		Y: float32(cy) + r*float32(math.Sin(float64(heading-open))),
	}
	b := rl.Vector2{
		X: float32(cx) + r*float32(math.Cos(float64(heading+open))),
		Y: float32(cy) + r*float32(math.Sin(float64(heading+open))),
	}
	rl.DrawTriangle(c, b, a, rl.Black)
}

func drawGhost(gs GhostState, color rl.Color, cell int32) {
	cx := int32(gs.Pos.X)*cell + cell/2
	cy := int32(gs.Pos.Y)*cell + cell/2
	r := float32(cell) * 0.38

	rl.DrawCircle(cx, cy-cell/10, r, color)
	rl.DrawRectangle(cx-int32(r), cy-cell/10, int32(r*2), cell/3, color)

	// Eyes
	eyeOff := int32(r * 0.4)
	rl.DrawCircle(cx-eyeOff, cy-cell/6, r*0.22, rl.White)
	rl.DrawCircle(cx+eyeOff, cy-cell/6, r*0.22, rl.White)
	rl.DrawCircle(cx-eyeOff, cy-cell/6, r*0.1, rl.Black)
	rl.DrawCircle(cx+eyeOff, cy-cell/6, r*0.1, rl.Black)

	// Worker attribution above the body
	if gs.LastWorker > 0 {
		label := fmt.Sprintf("W%d", gs.LastWorker)
		rl.DrawText(label, cx-int32(r), cy-cell, 10, rl.White)
	}
}

// drawPanel renders the info panel below the maze.
func (g *Game) drawPanel(snap Snapshot, cfg *config.Config) {
	top := int32(g.grid.Height() * cfg.Screen.CellSize)
	rl.DrawRectangle(0, top, cfg.Derived.ScreenWidth, int32(cfg.Screen.PanelHeight), panelColor)

	modeColor := rl.Orange
	mode := "SEQUENTIAL"
	if snap.Parallel {
		modeColor = rl.Green
		mode = fmt.Sprintf("PARALLEL (%d workers)", snap.PoolSize)
	}
	lockState := "UNSAFE (no locks)"
	if snap.Locks {
		lockState = "safe (mutex)"
	}

	line1 := fmt.Sprintf("Mode: %s   Locks: %s", mode, lockState)
	line2 := fmt.Sprintf("AI avg: %.1f ms   FPS: %.0f   workload: %d ms   ghosts: %d",
		float64(snap.AvgAITime.Microseconds())/1000, snap.FPS, snap.WorkloadMS, len(snap.Ghosts))

	rl.DrawText(line1, 10, top+8, 18, modeColor)
	rl.DrawText(line2, 10, top+30, 16, rl.LightGray)

	y := top + 50
	if snap.Speedup > 0 {
		line := fmt.Sprintf("Speedup: %.2fx (max %dx)   efficiency: %.0f%%",
			snap.Speedup, snap.PoolSize, snap.Efficiency*100)
		rl.DrawText(line, 10, y, 16, rl.Green)
		y += 20
	}

	stats := fmt.Sprintf("Updates: %d   workers seen: %d", snap.Stats.TotalUpdates, snap.Stats.ActiveWorkers)
	if !snap.Locks {
		stats += fmt.Sprintf("   race attempts: %d", snap.Stats.RaceEvents)
	}
	rl.DrawText(stats, 10, y, 16, rl.LightGray)
	y += 20

	rl.DrawText("SPACE mode  L locks  U unsafe  +/- workload  R reset  Q quit", 10, y, 14, rl.Gray)
}
