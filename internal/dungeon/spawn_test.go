package dungeon

import (
	"errors"
	"testing"

	"github.com/wanigame/wanirogue/internal/geom"
)

func TestRespawnableCoordLandsInRoom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m := Generate(41, 31, NewRandom(seed))
		rng := NewRandom(seed + 100)

		for i := 0; i < 50; i++ {
			p, err := m.RespawnableCoord(rng)
			if err != nil {
				t.Fatalf("seed=%d: RespawnableCoord: %v", seed, err)
			}
			if p.X%m.TileSize != 0 || p.Y%m.TileSize != 0 {
				t.Fatalf("seed=%d: %v is not in pixel units", seed, p)
			}
			cell := p.Div(m.TileSize)
			if c, ok := m.ComponentAt(cell.X, cell.Y); !ok || c != Room {
				t.Fatalf("seed=%d: respawn cell %v is %s", seed, cell, c)
			}
		}
	}
}

func TestRespawnableCoordFallsBackOnDegenerateSource(t *testing.T) {
	m := Generate(7, 7, lowerBound{})
	rng := &countingSource{src: lowerBound{}}

	p, err := m.RespawnableCoord(rng)
	if err != nil {
		t.Fatalf("RespawnableCoord: %v", err)
	}
	// (0,0) is always wall, so the direct pick returns the first room cell.
	if p != geom.V(32, 32) {
		t.Errorf("RespawnableCoord = %v, want (32,32)", p)
	}
	if rng.calls != 2*maxRespawnDraws+1 {
		t.Errorf("drew %d values, want %d", rng.calls, 2*maxRespawnDraws+1)
	}
}

func TestRespawnableCoordNoRooms(t *testing.T) {
	g := newGrid(9, 9)
	carveMaze(g, NewRandom(1))
	m := &Map{Grid: *g, TileSize: DefaultTileSize, render: resolveTiles(g)}

	_, err := m.RespawnableCoord(NewRandom(1))
	if !errors.Is(err, ErrNoRooms) {
		t.Errorf("err = %v, want ErrNoRooms", err)
	}
}

func TestRespawnableCoordCustomTileSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileSize = 16

	m := NewGenerator(cfg).Generate(7, 7, lowerBound{})
	p, err := m.RespawnableCoord(lowerBound{})
	if err != nil {
		t.Fatalf("RespawnableCoord: %v", err)
	}
	if p != geom.V(16, 16) {
		t.Errorf("RespawnableCoord = %v, want (16,16)", p)
	}
}
