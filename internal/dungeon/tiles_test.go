package dungeon

import (
	"testing"

	"github.com/wanigame/wanirogue/internal/geom"
)

func TestTileTableCoversEveryWallMask(t *testing.T) {
	for mask := 0; mask < 256; mask++ {
		if idx := tileTable[mask]; idx == PlaceholderTile {
			t.Errorf("mask %08b has no tile", mask)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		mask uint8
		want int
	}{
		{"pillar", 0, 22},
		{"pillar ignores diagonals", slantBits, 22},
		{"end from above", nbUp, 20},
		{"end from left", nbLeft | nbUpLeft, 13},
		{"end from right", nbRight, 11},
		{"end from below", nbDown, 4},
		{"vertical", nbUp | nbDown | nbUpLeft, 6},
		{"horizontal", nbLeft | nbRight, 7},
		{"corner up-left filled", nbUp | nbLeft | nbUpLeft, 18},
		{"corner up-left open", nbUp | nbLeft, 21},
		{"corner up-right filled", nbUp | nbRight | nbUpRight, 16},
		{"corner up-right open", nbUp | nbRight, 19},
		{"corner down-left filled", nbLeft | nbDown | nbDownLeft, 2},
		{"corner down-left open", nbLeft | nbDown, 5},
		{"corner down-right filled", nbRight | nbDown | nbDownRight, 0},
		{"corner down-right open", nbRight | nbDown, 3},
		{"tee open below, both", nbUp | nbLeft | nbRight | nbUpLeft | nbUpRight, 17},
		{"tee open below, left", nbUp | nbLeft | nbRight | nbUpLeft, 36},
		{"tee open below, right", nbUp | nbLeft | nbRight | nbUpRight, 34},
		{"tee open below, none", nbUp | nbLeft | nbRight, 32},
		{"tee open left, both", nbUp | nbRight | nbDown | nbUpRight | nbDownRight, 8},
		{"tee open above, none", nbLeft | nbRight | nbDown, 25},
		{"tee open right, down-left", nbUp | nbLeft | nbDown | nbDownLeft, 37},
		{"cross open", crossBits, 12},
		{"cross up-left", crossBits | nbUpLeft, 39},
		{"cross down-left", crossBits | nbDownLeft, 31},
		{"cross diagonal pair", crossBits | nbUpLeft | nbDownRight, 15},
		{"cross top pair", crossBits | nbUpLeft | nbUpRight, 49},
		{"cross missing up-left", crossBits | slantBits&^nbUpLeft, 42},
		{"cross missing down-left", crossBits | slantBits&^nbDownLeft, 50},
		{"solid", crossBits | slantBits, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tileTable[tt.mask]; got != tt.want {
				t.Errorf("tileTable[%08b] = %d, want %d", tt.mask, got, tt.want)
			}
		})
	}
}

func TestWallMaskTreatsOutsideAsWall(t *testing.T) {
	g := gridFromRows(t,
		"###",
		"#.#",
		"###",
	)

	if got, want := g.wallMask(geom.V(0, 0)), crossBits|slantBits&^nbDownRight; got != want {
		t.Errorf("corner mask = %08b, want %08b", got, want)
	}
	if got, want := g.wallMask(geom.V(1, 0)), nbUp|nbLeft|nbRight|nbUpLeft|nbUpRight|nbDownLeft|nbDownRight; got != want {
		t.Errorf("top edge mask = %08b, want %08b", got, want)
	}
}

func TestResolveTiles(t *testing.T) {
	g := gridFromRows(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	render := resolveTiles(g)
	at := func(x, y int) int { return render[y*g.Width+x] }

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 51}, // top-left corner, only the inside diagonal open
		{4, 0, 50},
		{0, 4, 43},
		{4, 4, 42},
		{2, 0, 17}, // top edge
		{0, 2, 10}, // left edge
		{4, 2, 8},  // right edge
		{2, 4, 1},  // bottom edge
		{2, 2, 22}, // pillar in the middle of the room
		{1, 1, PlaceholderTile},
		{3, 3, PlaceholderTile},
	}

	for _, tt := range tests {
		if got := at(tt.x, tt.y); got != tt.want {
			t.Errorf("render(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpriteRect(t *testing.T) {
	tests := []struct {
		index int
		want  geom.Rect
	}{
		{0, geom.R(0, 0, 32, 32)},
		{7, geom.R(224, 0, 32, 32)},
		{PlaceholderTile, geom.R(224, 64, 32, 32)},
		{51, geom.R(96, 192, 32, 32)},
	}

	for _, tt := range tests {
		if got := SpriteRect(tt.index); got != tt.want {
			t.Errorf("SpriteRect(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}
