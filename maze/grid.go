// Package maze provides the seeded maze grid and grid pathfinding.
package maze

import "math/rand"

// Cell is the content of one grid square.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Pos is a cell coordinate on the grid.
type Pos struct {
	X, Y int
}

// Grid is an immutable rectangular maze. All mutation happens during
// Generate; afterwards the grid is safe for concurrent reads.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width+x
}

// Generate builds a maze deterministically from the seed: solid border
// walls, horizontal wall bars every third row with gaps, a number of
// randomly scattered interior walls, and a single gate in the top border.
// Spawn cells are carved open last so every layout is playable.
func Generate(width, height int, seed int64, randomWalls int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	rng := rand.New(rand.NewSource(seed))

	// Border walls
	for x := 0; x < width; x++ {
		g.set(x, 0, Wall)
		g.set(x, height-1, Wall)
	}
	for y := 0; y < height; y++ {
		g.set(0, y, Wall)
		g.set(width-1, y, Wall)
	}

	// Horizontal bars with regular gaps
	for y := 3; y < height-3; y += 3 {
		for x := 2; x < width-2; x++ {
			if x%5 != 0 {
				g.set(x, y, Wall)
			}
		}
	}

	// Scattered interior walls
	for i := 0; i < randomWalls; i++ {
		x := 2 + rng.Intn(width-4)
		y := 2 + rng.Intn(height-4)
		g.set(x, y, Wall)
	}

	// Gate in the top border
	g.set(width/2, 0, Open)

	// Spawn cells must stay open regardless of what the bars or the
	// scattered walls hit.
	g.set(width/2, height/2, Open)
	for _, p := range StartPositions(width, height) {
		g.set(p.X, p.Y, Open)
	}

	return g
}

// StartPositions returns the agent spawn cells for a grid of the given
// size: the four interior corners plus top and bottom center. Agents
// beyond six reuse positions round-robin.
func StartPositions(width, height int) []Pos {
	return []Pos{
		{1, 1},
		{width - 2, 1},
		{1, height - 2},
		{width - 2, height - 2},
		{width / 2, 1},
		{width / 2, height - 2},
	}
}

// PlayerStart returns the player spawn cell, the grid center.
func (g *Grid) PlayerStart() Pos {
	return Pos{g.width / 2, g.height / 2}
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.width+x] = c
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x, y). Out of bounds is Wall.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// Passable reports whether (x, y) is inside the grid and open.
func (g *Grid) Passable(x, y int) bool {
	return g.At(x, y) == Open
}

// PelletCells returns the open interior cells, the base set for the
// pellet layer. The border gate is excluded.
func (g *Grid) PelletCells() []Pos {
	cells := make([]Pos, 0, g.width*g.height)
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.Passable(x, y) {
				cells = append(cells, Pos{x, y})
			}
		}
	}
	return cells
}
