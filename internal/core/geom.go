// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units (pixels, y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a world rectangle.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rectangles intersect.
// With inclusive set, rectangles that only touch along an edge count as overlapping.
func (r Rect) Overlaps(o Rect, inclusive bool) bool {
	if inclusive {
		return r.X <= o.Right() && o.X <= r.Right() &&
			r.Y <= o.Bottom() && o.Y <= r.Bottom()
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Circle is a ball-shaped body.
type Circle struct {
	C Vec2
	R float64
}

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() Rect {
	return Rect{X: c.C.X - c.R, Y: c.C.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// OverlapsRect tests the circle's bounding square against r.
// Paddle tests use the inclusive form; block tests use the strict form so a
// ball resting on a face does not re-trigger.
func (c Circle) OverlapsRect(r Rect, inclusive bool) bool {
	return c.Bounds().Overlaps(r, inclusive)
}

// Penetration returns the signed distance of the circle center outside r
// along each axis: |center - rectCenter| - halfExtent. Negative values mean
// the center lies within the rectangle's span on that axis.
func Penetration(c Circle, r Rect) (dx, dy float64) {
	rc := r.Center()
	dx = math.Abs(c.C.X-rc.X) - r.W/2
	dy = math.Abs(c.C.Y-rc.Y) - r.H/2
	return dx, dy
}

// Axis selects which velocity components a collision inverts.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisBoth
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisBoth:
		return "both"
	default:
		return "none"
	}
}

// ReflectAxis picks the reflection axis from the per-axis penetration
// distances returned by Penetration. The axis the center is further outside
// of is the face that was struck; a tie is a corner hit and inverts both.
func ReflectAxis(dx, dy float64) Axis {
	switch {
	case dx == dy:
		return AxisBoth
	case dx < dy:
		return AxisY
	default:
		return AxisX
	}
}

// Reflect inverts the velocity components selected by a.
func Reflect(v Vec2, a Axis) Vec2 {
	switch a {
	case AxisX:
		v.X = -v.X
	case AxisY:
		v.Y = -v.Y
	case AxisBoth:
		v.X = -v.X
		v.Y = -v.Y
	}
	return v
}

// CellRect represents an axis-aligned box in screen cells, used for drawing.
type CellRect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewCellRect creates a new cell rectangle with the given position and dimensions.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
