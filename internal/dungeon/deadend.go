package dungeon

import "github.com/wanigame/wanirogue/internal/geom"

// notScored marks cells the pruner never considers: walls, rooms and the border.
const notScored = -1

// pruneDeadEnds walls off every corridor spur back to its branch point.
//
// Each interior corridor cell is scored with its number of open neighbours.
// Starting from any cell scoring exactly one, the walk walls the cell,
// decrements its own score and its neighbours' scores, then steps to the
// first neighbour (up, down, left, right) now scoring one. Scores are updated
// eagerly, so a spur is always consumed in a single walk.
func pruneDeadEnds(g *Grid) {
	open := make([]int, g.Width*g.Height)
	for i := range open {
		open[i] = notScored
	}
	idx := func(p geom.Vec2) int { return p.Y*g.Width + p.X }

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			p := geom.V(x, y)
			if g.at(p) == Corridor {
				open[idx(p)] = g.openNeighbours(p)
			}
		}
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if open[y*g.Width+x] != 1 {
				continue
			}

			cursor := geom.V(x, y)
			for {
				g.set(cursor, Wall)
				open[idx(cursor)]--
				for _, d := range geom.Cardinals() {
					open[idx(cursor.Add(d))]--
				}

				moved := false
				for _, d := range geom.Cardinals() {
					if n := cursor.Add(d); open[idx(n)] == 1 {
						cursor = n
						moved = true
						break
					}
				}
				if !moved {
					break
				}
			}
		}
	}
}
