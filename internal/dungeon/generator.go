// Package dungeon generates wall-bounded grid maps of corridors and
// rectangular rooms without dead ends.
//
// Generation is a single synchronous call. All randomness comes from the
// RandomSource passed in, so a deterministic source yields identical maps.
package dungeon

import (
	"log/slog"
	"time"

	"github.com/wanigame/wanirogue/internal/geom"
)

// DefaultTileSize is the pixel size of one cell.
const DefaultTileSize = 32

// Config contains parameters for map generation
type Config struct {
	Rooms    RoomConfig
	TileSize int // pixels per cell, used by RespawnableCoord
}

// DefaultConfig returns the stock generation parameters
func DefaultConfig() Config {
	return Config{
		Rooms:    DefaultRoomConfig(),
		TileSize: DefaultTileSize,
	}
}

// Map is a generated dungeon. It is not modified after Generate returns and
// may be shared read-only.
type Map struct {
	Grid
	Rooms    []geom.Rect // placed rooms in placement order
	TileSize int

	render []int
}

// RenderIndexAt returns the sprite index of (x, y). Non-wall cells report
// PlaceholderTile. ok is false outside the map.
func (m *Map) RenderIndexAt(x, y int) (index int, ok bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.render[y*m.Width+x], true
}

// Generator builds maps from a Config
type Generator struct {
	config Config
	log    *slog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger used for progress diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator creates a new map generator
func NewGenerator(config Config, opts ...Option) *Generator {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	g := &Generator{
		config: config,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a map of roughly width x height cells. The size is first
// normalized with NormalizeSize, so any input yields a valid map.
func (gen *Generator) Generate(width, height int, rng RandomSource) *Map {
	start := time.Now()
	w, h := NormalizeSize(width, height)
	gen.log.Debug("Generating map", "requested_width", width, "requested_height", height, "width", w, "height", h)

	g := newGrid(w, h)

	carveMaze(g, rng)
	gen.log.Debug("Maze carved", "posts", ((w-3)/2)*((h-3)/2))

	rooms := placeRooms(g, rng, gen.config.Rooms)
	gen.log.Debug("Rooms placed", "count", len(rooms))
	if len(rooms) == 0 {
		gen.log.Warn("No rooms placed; map has no spawnable cells", "width", w, "height", h)
	}

	pruneDeadEnds(g)
	gen.log.Debug("Dead ends removed")

	m := &Map{
		Grid:     *g,
		Rooms:    rooms,
		TileSize: gen.config.TileSize,
		render:   resolveTiles(g),
	}

	gen.log.Debug("Map generated", "width", w, "height", h, "rooms", len(rooms), "elapsed", time.Since(start))
	return m
}

// Generate builds a map with DefaultConfig.
func Generate(width, height int, rng RandomSource) *Map {
	return NewGenerator(DefaultConfig()).Generate(width, height, rng)
}
