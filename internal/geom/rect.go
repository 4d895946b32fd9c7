package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
//
// Contains treats the right and bottom edges as inclusive, so the bounds of a
// W x H grid are Rect{0, 0, W-1, H-1}. Cells reports the W x H block of cells
// the rectangle covers when it is used as a room footprint.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies within [X, X+W] x [Y, Y+H].
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.X+o.W <= r.X+r.W &&
		o.Y >= r.Y && o.Y+o.H <= r.Y+r.H
}

// Min returns the top-left cell of the footprint.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the bottom-right cell of the footprint.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W - 1, r.Y + r.H - 1}
}

// Overlaps reports whether the cell footprints of r and o share a cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	rmax, omax := r.Max(), o.Max()
	return r.X <= omax.X && rmax.X >= o.X &&
		r.Y <= omax.Y && rmax.Y >= o.Y
}

// Slide returns r translated by d.
func (r Rect) Slide(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}
