// Package physics provides axis-aligned collision tests and a broad-phase grid.
package physics

import "github.com/tomz197/pastelshooter/internal/vec"

// Rect is an axis-aligned bounding box with its top-left corner at (X, Y).
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds a rect of size w×h centered on c.
func RectFromCenter(c vec.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// MidTop returns the middle of the top edge.
func (r Rect) MidTop() vec.Vec2 {
	return vec.Vec2{X: r.X + r.W/2, Y: r.Y}
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}
