package dungeon

import "github.com/wanigame/wanirogue/internal/geom"

// RoomConfig bounds the room placement pass. All ranges are half-open.
type RoomConfig struct {
	MinCount, MaxCount     int // rooms to attempt
	MinRetries, MaxRetries int // placement attempts per room
	MinSize, MaxSize       int // side length, rounded down to odd
}

// DefaultRoomConfig returns the stock room parameters
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		MinCount:   5,
		MaxCount:   10,
		MinRetries: 5,
		MaxRetries: 7,
		MinSize:    8,
		MaxSize:    16,
	}
}

// placeRooms stamps rooms onto the maze and returns the ones placed, in order.
// An attempt that touches an existing room is thrown away; a room whose
// attempts all fail is skipped.
func placeRooms(g *Grid, rng RandomSource, cfg RoomConfig) []geom.Rect {
	var rooms []geom.Rect

	count := rng.IntRange(cfg.MinCount, cfg.MaxCount)
	for n := 0; n < count; n++ {
		retries := rng.IntRange(cfg.MinRetries, cfg.MaxRetries)

		for attempt := 0; attempt < retries; attempt++ {
			room := drawRoom(g, rng, cfg)
			if g.contains(room, Room) {
				continue
			}
			g.fill(room, Room)
			rooms = append(rooms, room)
			break
		}
	}

	return rooms
}

// drawRoom picks an odd-sized, odd-aligned rectangle inside the border.
// Sizes are clamped to the interior so that small maps still get rooms.
func drawRoom(g *Grid, rng RandomSource, cfg RoomConfig) geom.Rect {
	w := min(toOdd(rng.IntRange(cfg.MinSize, cfg.MaxSize)), g.Width-2)
	h := min(toOdd(rng.IntRange(cfg.MinSize, cfg.MaxSize)), g.Height-2)
	x := oddOffset(rng, g.Width, w)
	y := oddOffset(rng, g.Height, h)
	return geom.R(x, y, w, h)
}

// toOdd rounds n down to an even number and adds one.
func toOdd(n int) int {
	return n/2*2 + 1
}

// oddOffset returns an odd start coordinate so that a span of size cells
// ends no later than limit-2. When only one start fits, no value is drawn.
func oddOffset(rng RandomSource, limit, size int) int {
	hi := limit - size - 1
	if hi <= 1 {
		return 1
	}
	return toOdd(rng.IntRange(1, hi))
}
