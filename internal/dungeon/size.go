package dungeon

// MinSize is the smallest width or height a generated map can have.
const MinSize = 5

// NormalizeSize rounds a requested size to the 2n+3 (n >= 1) form the carver
// needs: odd, at least MinSize, with the border on the wall lattice.
// Negative values are treated as zero.
func NormalizeSize(width, height int) (int, int) {
	return normalizeAxis(width), normalizeAxis(height)
}

func normalizeAxis(n int) int {
	half := n / 2
	if half < 1 {
		half = 1
	}
	return half*2 + 3
}
