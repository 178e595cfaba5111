// Package core provides fundamental types and utilities for the runner
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in integer screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in continuous world coordinates.
// The simulation runs in world space; the platform scales world rects
// down to screen cells when rendering.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Inset returns a copy of the rectangle shrunk by d on every side.
// An inset larger than half the extent collapses that axis to zero,
// which never intersects anything.
func (r RectF) Inset(d float64) RectF {
	w := r.W - 2*d
	h := r.H - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return RectF{X: r.X + d, Y: r.Y + d, W: w, H: h}
}

// Intersects reports AABB overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
