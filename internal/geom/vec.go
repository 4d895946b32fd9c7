// Package geom provides the integer vector and rectangle types shared by the
// generator and its consumers (collision, camera, renderer culling).
package geom

import (
	"fmt"
	"math"
)

// Vec2 is an integer 2D vector. Y grows downward.
type Vec2 struct {
	X, Y int
}

// Unit directions
var (
	Zero  = Vec2{0, 0}
	Up    = Vec2{0, -1}
	Down  = Vec2{0, 1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// Cardinals returns the four axis directions in up, down, left, right order.
// A fresh slice is returned so callers may consume it destructively.
func Cardinals() []Vec2 {
	return []Vec2{Up, Down, Left, Right}
}

// V is shorthand for Vec2{x, y}.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul scales both components by k.
func (v Vec2) Mul(k int) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div divides both components by k using integer division. Panics if k is 0.
func (v Vec2) Div(k int) Vec2 {
	return Vec2{v.X / k, v.Y / k}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y))
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
