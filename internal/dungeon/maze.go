package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/wanigame/wanirogue/internal/geom"
)

// carveMaze turns an open grid into a perfect maze by stretching walls out
// of randomly chosen posts until each one strikes an existing wall.
//
// Walls live on even coordinates and corridors on odd ones, so the grid must
// have the 2n+3 shape produced by NormalizeSize.
func carveMaze(g *Grid, rng RandomSource) {
	g.buildOuterWall()

	posts := g.posts()
	for len(posts) > 0 {
		i := rng.IntRange(0, len(posts))
		post := posts[i]

		if g.at(post) == Wall {
			posts = append(posts[:i], posts[i+1:]...)
			continue
		}

		g.stretchWall(post, rng)
	}
}

// buildOuterWall walls off every border cell.
func (g *Grid) buildOuterWall() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x == 0 || x == g.Width-1 || y == 0 || y == g.Height-1 {
				g.set(geom.V(x, y), Wall)
			}
		}
	}
}

// posts returns the interior wall-lattice points, column by column.
func (g *Grid) posts() []geom.Vec2 {
	cols := (g.Width - 3) / 2
	rows := (g.Height - 3) / 2

	posts := make([]geom.Vec2, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			posts = append(posts, geom.V((i+1)*2, (j+1)*2))
		}
	}
	return posts
}

// stretchWall grows a candidate wall from start, two cells per step, until
// the cursor lands on a wall; the contiguous candidate run is then committed.
//
// When every direction from the cursor leads back into the candidate path the
// cursor is rewound one step. The dead-end cell stays in the path so it is
// never entered again, while the connector leading to it is dropped; that
// breaks contiguity, so the dead end is neither rewound to nor committed.
func (g *Grid) stretchWall(start geom.Vec2, rng RandomSource) {
	cursor := start
	path := []geom.Vec2{start}
	inPath := mapset.New[geom.Vec2]()
	inPath.Put(start)

	for g.at(cursor) != Wall {
		if next, dir, ok := pickStretch(cursor, &inPath, rng); ok {
			connector := cursor.Add(dir)
			path = append(path, connector, next)
			inPath.Put(connector)
			inPath.Put(next)
			cursor = next
			continue
		}

		// Stuck. end >= 2 holds here: a cursor at the start could only be
		// stuck if every post around it were already a dead end, and such a
		// closed set of posts would have to contain a wall.
		end := contiguousEnd(path)
		cursor = path[end-2]
		inPath.Remove(path[end-1])
		path = append(path[:end-1], path[end:]...)
	}

	prev := path[0]
	for _, p := range path {
		if p.Dist(prev) <= 1 {
			g.set(p, Wall)
			prev = p
		}
	}
}

// pickStretch tries the four directions in random order, each at most once,
// and returns the first target two cells away that is not already in the path.
func pickStretch(cursor geom.Vec2, inPath *mapset.Set[geom.Vec2], rng RandomSource) (geom.Vec2, geom.Vec2, bool) {
	dirs := geom.Cardinals()
	for len(dirs) > 0 {
		r := rng.IntRange(0, len(dirs))
		dir := dirs[r]
		dirs = append(dirs[:r], dirs[r+1:]...)

		next := cursor.Add(dir.Mul(2))
		if inPath.Has(next) {
			continue
		}
		return next, dir, true
	}
	return geom.Vec2{}, geom.Vec2{}, false
}

// contiguousEnd returns the index of the last cell of the unit-step run
// that starts at path[0].
func contiguousEnd(path []geom.Vec2) int {
	prev := path[0]
	end := 0
	for i, p := range path {
		if p.Dist(prev) <= 1 {
			prev = p
			end = i
		}
	}
	return end
}
