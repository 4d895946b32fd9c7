package dungeon

import "math/rand"

// RandomSource supplies uniform integers in the half-open range [lo, hi).
// Implementations are only called sequentially from one generation call.
// Returning values outside the range is a caller bug and may panic.
type RandomSource interface {
	IntRange(lo, hi int) int
}

// Random adapts a seeded math/rand generator to RandomSource.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a RandomSource seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform value in [lo, hi). Panics if hi <= lo.
func (r *Random) IntRange(lo, hi int) int {
	return lo + r.rng.Intn(hi-lo)
}
