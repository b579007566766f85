// Package core provides fundamental types and utilities for flipspider.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Shrink insets all four sides by the given amount. A positive inset makes
// the rectangle smaller, a negative inset grows it. Width and height never
// drop below zero.
func (r Rect) Shrink(inset float64) Rect {
	out := Rect{
		X: r.X + inset,
		Y: r.Y + inset,
		W: r.W - 2*inset,
		H: r.H - 2*inset,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Circle is a collision circle in world units.
type Circle struct {
	X, Y float64 // Center position
	R    float64 // Radius
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// Uses the closest-point test: clamp the center into the rectangle, then
// compare the squared distance to the clamped point against R².
func (c Circle) IntersectsRect(r Rect) bool {
	cx := ClampF(c.X, r.X, r.Right())
	cy := ClampF(c.Y, r.Y, r.Bottom())
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
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
