package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/wanigame/wanirogue/internal/geom"
)

// Stats summarizes a grid's contents
type Stats struct {
	Walls     int
	Corridors int
	RoomCells int
}

// Stats counts the cells of each component.
func (g *Grid) Stats() Stats {
	var s Stats
	for _, c := range g.cells {
		switch c {
		case Wall:
			s.Walls++
		case Corridor:
			s.Corridors++
		case Room:
			s.RoomCells++
		}
	}
	return s
}

// OpenRegions returns the 4-connected groups of open cells, each in BFS order.
// Regions are ordered by their first cell in row-major order.
func (g *Grid) OpenRegions() [][]geom.Vec2 {
	var regions [][]geom.Vec2
	visited := mapset.New[geom.Vec2]()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := geom.V(x, y)
			if !g.at(start).Open() || visited.Has(start) {
				continue
			}

			var region []geom.Vec2
			queue := []geom.Vec2{start}
			visited.Put(start)
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				region = append(region, cur)

				for _, d := range geom.Cardinals() {
					n := cur.Add(d)
					if c, ok := g.ComponentAt(n.X, n.Y); ok && c.Open() && !visited.Has(n) {
						visited.Put(n)
						queue = append(queue, n)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// Connected reports whether all open cells form a single region.
func (g *Grid) Connected() bool {
	return len(g.OpenRegions()) <= 1
}

// DeadEnds returns the corridor cells with exactly one open neighbour.
func (g *Grid) DeadEnds() []geom.Vec2 {
	var ends []geom.Vec2
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geom.V(x, y)
			if g.at(p) == Corridor && g.openNeighbours(p) == 1 {
				ends = append(ends, p)
			}
		}
	}
	return ends
}
