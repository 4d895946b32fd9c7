package dungeon

import (
	"errors"

	"github.com/wanigame/wanirogue/internal/geom"
)

// ErrNoRooms is returned when a map has no room cell to spawn into.
// The map must be regenerated with different parameters.
var ErrNoRooms = errors.New("dungeon: map has no room cells")

// maxRespawnDraws bounds rejection sampling before falling back to a direct
// pick among the room cells.
const maxRespawnDraws = 4096

// RespawnableCoord returns a uniformly chosen room cell in pixel units
// (cell coordinate times TileSize).
func (m *Map) RespawnableCoord(rng RandomSource) (geom.Vec2, error) {
	cells := m.roomCells()
	if len(cells) == 0 {
		return geom.Vec2{}, ErrNoRooms
	}

	for i := 0; i < maxRespawnDraws; i++ {
		p := geom.V(rng.IntRange(0, m.Width), rng.IntRange(0, m.Height))
		if c, ok := m.ComponentAt(p.X, p.Y); ok && c == Room {
			return p.Mul(m.TileSize), nil
		}
	}

	return cells[rng.IntRange(0, len(cells))].Mul(m.TileSize), nil
}

// roomCells lists every room cell in row-major order.
func (m *Map) roomCells() []geom.Vec2 {
	var cells []geom.Vec2
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.cells[y*m.Width+x] == Room {
				cells = append(cells, geom.V(x, y))
			}
		}
	}
	return cells
}
