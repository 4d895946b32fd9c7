package dungeon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wanigame/wanirogue/internal/geom"
)

// ErrBadRows is returned by ParseRows for malformed input.
var ErrBadRows = errors.New("dungeon: malformed grid rows")

// Grid is a row-major rectangle of components.
type Grid struct {
	Width, Height int
	cells         []Component
}

// newGrid creates a width x height grid of open corridor.
func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Component, width*height),
	}
}

// Bounds returns the inclusive cell bounds of the grid.
func (g *Grid) Bounds() geom.Rect {
	return geom.R(0, 0, g.Width-1, g.Height-1)
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Bounds().Contains(geom.V(x, y))
}

// ComponentAt returns the component at (x, y). ok is false outside the grid;
// callers doing movement or collision must treat that as impassable.
func (g *Grid) ComponentAt(x, y int) (c Component, ok bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y*g.Width+x], true
}

// at returns the component at p without bounds checking.
func (g *Grid) at(p geom.Vec2) Component {
	return g.cells[p.Y*g.Width+p.X]
}

func (g *Grid) set(p geom.Vec2, c Component) {
	g.cells[p.Y*g.Width+p.X] = c
}

// isWallOrOutside treats everything beyond the border as wall.
func (g *Grid) isWallOrOutside(p geom.Vec2) bool {
	c, ok := g.ComponentAt(p.X, p.Y)
	return !ok || c == Wall
}

// fill overwrites every cell of the room footprint r.
func (g *Grid) fill(r geom.Rect, c Component) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.cells[y*g.Width+x] = c
		}
	}
}

// contains reports whether any cell of the footprint r holds c.
func (g *Grid) contains(r geom.Rect, c Component) bool {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.cells[y*g.Width+x] == c {
				return true
			}
		}
	}
	return false
}

// openNeighbours counts the orthogonal neighbours of p that are open.
func (g *Grid) openNeighbours(p geom.Vec2) int {
	n := 0
	for _, d := range geom.Cardinals() {
		if c, ok := g.ComponentAt(p.X+d.X, p.Y+d.Y); ok && c.Open() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Component, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows renders the grid one string per row, see Component.Rune.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.cells[y*g.Width+x].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ParseRows builds a grid from the form produced by Rows.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadRows)
	}
	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadRows, y, len(row), g.Width)
		}
		for x, r := range row {
			c, ok := ComponentFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrBadRows, r, x, y)
			}
			g.set(geom.V(x, y), c)
		}
	}
	return g, nil
}
