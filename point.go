package panomark

import "math"

// Point represents a 2D viewport point or vector, in pixels for screen
// coordinates and in the 0..1 range for fractional anchor points.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Approx reports whether two points are equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// Size is a pixel box, width by height.
type Size struct {
	Width, Height float64
}

// IsZero reports whether the size has no extent.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Position is a direction on the panorama sphere, in radians.
type Position struct {
	Yaw, Pitch float64
}

// Euler is a fully populated rotation triple, in radians.
type Euler struct {
	Yaw, Pitch, Roll float64
}

// IsZero reports whether the rotation is the identity.
func (e Euler) IsZero() bool {
	return e.Yaw == 0 && e.Pitch == 0 && e.Roll == 0
}
