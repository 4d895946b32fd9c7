package dungeon

import "github.com/wanigame/wanirogue/internal/geom"

// PlaceholderTile is the render index of every non-wall cell.
const PlaceholderTile = 23

// Sprite sheet layout used by the render indices.
const (
	SpriteSize    = 32
	SpritesPerRow = 8
)

// Neighbour bits of a tile bitmask, bit set when that neighbour is a wall
// or lies outside the grid.
const (
	nbUpLeft    uint8 = 1 << 7
	nbUp        uint8 = 1 << 6
	nbUpRight   uint8 = 1 << 5
	nbLeft      uint8 = 1 << 4
	nbRight     uint8 = 1 << 3
	nbDownLeft  uint8 = 1 << 2
	nbDown      uint8 = 1 << 1
	nbDownRight uint8 = 1 << 0

	crossBits = nbUp | nbLeft | nbRight | nbDown
	slantBits = nbUpLeft | nbUpRight | nbDownLeft | nbDownRight
)

var neighbourOffsets = [8]struct {
	d   geom.Vec2
	bit uint8
}{
	{geom.Up.Add(geom.Left), nbUpLeft},
	{geom.Up, nbUp},
	{geom.Up.Add(geom.Right), nbUpRight},
	{geom.Left, nbLeft},
	{geom.Right, nbRight},
	{geom.Down.Add(geom.Left), nbDownLeft},
	{geom.Down, nbDown},
	{geom.Down.Add(geom.Right), nbDownRight},
}

// tileRule selects index when the wall's cross bits equal cross and its
// diagonal bits include slant (or equal slant when exact is set).
type tileRule struct {
	cross uint8
	slant uint8
	exact bool
	index int
}

// tileRules is ordered; the first matching rule wins.
var tileRules = []tileRule{
	// isolated pillar
	{0, 0, false, 22},

	// wall ends
	{nbUp, 0, false, 20},
	{nbLeft, 0, false, 13},
	{nbRight, 0, false, 11},
	{nbDown, 0, false, 4},

	// straight runs and corners
	{nbUp | nbDown, 0, false, 6},
	{nbLeft | nbRight, 0, false, 7},
	{nbUp | nbLeft, nbUpLeft, false, 18},
	{nbUp | nbLeft, 0, false, 21},
	{nbUp | nbRight, nbUpRight, false, 16},
	{nbUp | nbRight, 0, false, 19},
	{nbLeft | nbDown, nbDownLeft, false, 2},
	{nbLeft | nbDown, 0, false, 5},
	{nbRight | nbDown, nbDownRight, false, 0},
	{nbRight | nbDown, 0, false, 3},

	// tees, open below
	{nbUp | nbLeft | nbRight, nbUpLeft | nbUpRight, false, 17},
	{nbUp | nbLeft | nbRight, nbUpLeft, false, 36},
	{nbUp | nbLeft | nbRight, nbUpRight, false, 34},
	{nbUp | nbLeft | nbRight, 0, false, 32},
	// open left
	{nbUp | nbRight | nbDown, nbUpRight | nbDownRight, false, 8},
	{nbUp | nbRight | nbDown, nbUpRight, false, 28},
	{nbUp | nbRight | nbDown, nbDownRight, false, 26},
	{nbUp | nbRight | nbDown, 0, false, 24},
	// open above
	{nbLeft | nbRight | nbDown, nbDownLeft | nbDownRight, false, 1},
	{nbLeft | nbRight | nbDown, nbDownRight, false, 29},
	{nbLeft | nbRight | nbDown, nbDownLeft, false, 27},
	{nbLeft | nbRight | nbDown, 0, false, 25},
	// open right
	{nbUp | nbLeft | nbDown, nbUpLeft | nbDownLeft, false, 10},
	{nbUp | nbLeft | nbDown, nbDownLeft, false, 37},
	{nbUp | nbLeft | nbDown, nbUpLeft, false, 35},
	{nbUp | nbLeft | nbDown, 0, false, 33},

	// crossings, keyed by exactly which diagonals are walls
	{crossBits, 0, true, 12},
	{crossBits, nbUpLeft, true, 39},
	{crossBits, nbUpRight, true, 38},
	{crossBits, nbDownRight, true, 30},
	{crossBits, nbDownLeft, true, 31},
	{crossBits, nbUpLeft | nbDownRight, true, 15},
	{crossBits, nbUpRight | nbDownLeft, true, 14},
	{crossBits, nbUpLeft | nbUpRight, true, 49},
	{crossBits, nbUpRight | nbDownRight, true, 48},
	{crossBits, nbDownLeft | nbDownRight, true, 40},
	{crossBits, nbUpLeft | nbDownLeft, true, 41},
	{crossBits, slantBits &^ nbUpLeft, true, 42},
	{crossBits, slantBits &^ nbUpRight, true, 43},
	{crossBits, slantBits &^ nbDownRight, true, 51},
	{crossBits, slantBits &^ nbDownLeft, true, 50},
	{crossBits, slantBits, true, 9},
}

// tileTable maps every possible bitmask to its render index.
var tileTable = buildTileTable(tileRules)

func buildTileTable(rules []tileRule) [256]int {
	var table [256]int
	for mask := 0; mask < 256; mask++ {
		table[mask] = classify(uint8(mask), rules)
	}
	return table
}

func classify(mask uint8, rules []tileRule) int {
	cross, slant := mask&crossBits, mask&slantBits
	for _, r := range rules {
		if r.cross != cross {
			continue
		}
		if r.exact && slant == r.slant || !r.exact && slant&r.slant == r.slant {
			return r.index
		}
	}
	return PlaceholderTile
}

// wallMask computes the tile bitmask of p.
func (g *Grid) wallMask(p geom.Vec2) uint8 {
	var mask uint8
	for _, n := range neighbourOffsets {
		if g.isWallOrOutside(p.Add(n.d)) {
			mask |= n.bit
		}
	}
	return mask
}

// resolveTiles returns the render index of every cell, row-major.
func resolveTiles(g *Grid) []int {
	render := make([]int, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geom.V(x, y)
			if g.at(p) != Wall {
				render[y*g.Width+x] = PlaceholderTile
				continue
			}
			render[y*g.Width+x] = tileTable[g.wallMask(p)]
		}
	}
	return render
}

// SpriteRect returns the source rectangle of a render index on the sprite sheet.
func SpriteRect(index int) geom.Rect {
	return geom.R(index%SpritesPerRow*SpriteSize, index/SpritesPerRow*SpriteSize, SpriteSize, SpriteSize)
}
