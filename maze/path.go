package maze

// neighborOffsets is the fixed expansion order for the search. Keeping
// the order fixed makes paths reproducible for a given maze.
var neighborOffsets = [4]Pos{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NextStep returns the first step of a shortest path from start to goal
// using breadth-first search. If start equals goal or no path exists,
// start is returned. All search state is allocated per call, so
// concurrent calls on the same grid are safe.
func (g *Grid) NextStep(start, goal Pos) Pos {
	if start == goal {
		return start
	}
	if !g.Passable(goal.X, goal.Y) || !g.Passable(start.X, start.Y) {
		return start
	}

	startID := start.Y*g.width + start.X
	goalID := goal.Y*g.width + goal.X

	// cameFrom doubles as the visited set; -1 means unvisited.
	cameFrom := make([]int, len(g.cells))
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	cameFrom[startID] = startID

	frontier := make([]int, 0, 64)
	frontier = append(frontier, startID)

	found := false
	for len(frontier) > 0 && !found {
		cur := frontier[0]
		frontier = frontier[1:]
		cx, cy := cur%g.width, cur/g.width

		for _, d := range neighborOffsets {
			nx, ny := cx+d.X, cy+d.Y
			if !g.Passable(nx, ny) {
				continue
			}
			next := ny*g.width + nx
			if cameFrom[next] != -1 {
				continue
			}
			cameFrom[next] = cur
			if next == goalID {
				found = true
				break
			}
			frontier = append(frontier, next)
		}
	}

	if !found {
		return start
	}

	// Walk the predecessor chain back to the cell adjacent to start.
	cur := goalID
	for cameFrom[cur] != startID {
		cur = cameFrom[cur]
	}
	return Pos{cur % g.width, cur / g.width}
}

// Distance returns the shortest path length in steps from start to
// goal, or -1 if goal is unreachable.
func (g *Grid) Distance(start, goal Pos) int {
	if start == goal {
		return 0
	}
	if !g.Passable(goal.X, goal.Y) || !g.Passable(start.X, start.Y) {
		return -1
	}

	startID := start.Y*g.width + start.X
	goalID := goal.Y*g.width + goal.X

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[startID] = 0

	frontier := make([]int, 0, 64)
	frontier = append(frontier, startID)

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		cx, cy := cur%g.width, cur/g.width

		for _, d := range neighborOffsets {
			nx, ny := cx+d.X, cy+d.Y
			if !g.Passable(nx, ny) {
				continue
			}
			next := ny*g.width + nx
			if dist[next] != -1 {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == goalID {
				return dist[next]
			}
			frontier = append(frontier, next)
		}
	}

	return -1
}
