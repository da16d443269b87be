// Package geom provides the 2D vector math used by the simulation core.
// All operations are pure; vectors are passed and returned by value.
package geom

import "math"

// Vec2 is a 2D vector in the normalized play field.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Len2 returns the squared magnitude of v.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length.
// A near-zero vector normalizes to the zero vector rather than NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Len()
}

// Distance2 returns the squared Euclidean distance between v and w.
func (v Vec2) Distance2(w Vec2) float64 {
	return v.Sub(w).Len2()
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Reflect mirrors v about a surface given by its tangent direction.
// The surface normal is the tangent's perpendicular; the result is
// v - 2*(v·n)*n with n normalized.
func (v Vec2) Reflect(surface Vec2) Vec2 {
	n := surface.Perp().Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
