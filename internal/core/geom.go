// Package core provides the platform-neutral types shared by games and the
// terminal layer: screen buffer, input frames, geometry and runtime config.
// It has no Bubble Tea dependency so game logic stays testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Norm returns the unit vector in v's direction, or the zero vector.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Toward returns the velocity that moves from toward to at speed.
// It is zero when from is already at to.
func Toward(from, to Vec, speed float64) Vec {
	return to.Sub(from).Norm().Scale(speed)
}

// RectF is a float axis-aligned box in world units.
type RectF struct {
	X, Y, W, H float64
}

// CenteredRect returns the box of size w x h centered on c.
func CenteredRect(c Vec, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Contains reports whether p lies inside r, edges included.
func (r RectF) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects reports whether r and o overlap with positive area.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r RectF) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}
