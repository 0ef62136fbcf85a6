package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectre/config"
)

// handleInput processes keyboard input for one graphical frame.
//
// SPACE toggles parallel dispatch, L toggles the lock protocol, U
// forces it off, +/- adjust the workload, R resets, Q quits. Arrows
// move the player one cell per press.
func (g *Game) handleInput() {
	g.fps = float64(rl.GetFPS())
	step := config.Cfg().Workload.StepMS

	if rl.IsKeyPressed(rl.KeySpace) {
		g.SetParallel(!g.parallel)
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.SetLocks(!g.locks)
	}
	if rl.IsKeyPressed(rl.KeyU) {
		g.SetLocks(false)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.AdjustWorkload(step)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.AdjustWorkload(-step)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.ResetGame()
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		g.quit = true
	}

	if rl.IsKeyPressed(rl.KeyLeft) {
		g.movePlayer(-1, 0)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		g.movePlayer(1, 0)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		g.movePlayer(0, -1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.movePlayer(0, 1)
	}
}
