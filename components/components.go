// Package components defines the ECS components for maze entities.
package components

// Position is an entity's cell coordinate on the maze grid.
type Position struct {
	X, Y int
}

// Ghost marks an entity as an AI-driven agent.
type Ghost struct {
	Index       int    // Stable agent index, fixed at spawn
	Name        string
	LastWorker  int // Worker that ran the last update; 0 means the control goroutine
	UpdateCount int // Completed AI updates applied to this agent
}

// Player marks the keyboard-controlled target entity.
type Player struct {
	DirX, DirY int     // Last movement direction, for drawing
	MouthPhase float32 // Animation phase, advances while the game runs
}
