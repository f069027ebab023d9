// SPDX-License-Identifier: MIT

// Core types and corner indices.

package geometry

import "fmt"

// Corner indices of a Quadrilateral. Every consumer relies on this order.
const (
	TopLeft     = 0
	TopRight    = 1
	BottomRight = 2
	BottomLeft  = 3
)

// Point is a pixel-space coordinate; it need not be integral.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is not strictly positive.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Segment is the closed line segment [A, B].
type Segment struct {
	A, B Point
}

// Quadrilateral is an ordered 4-tuple of corners:
// [TopLeft, TopRight, BottomRight, BottomLeft]. Callers must not reorder it.
type Quadrilateral [4]Point

// Points returns the corners as a fresh slice in winding order.
func (q Quadrilateral) Points() []Point {
	out := make([]Point, 4)
	copy(out, q[:])

	return out
}

// Rect returns the axis-aligned quadrilateral (0,0),(w,0),(w,h),(0,h).
func Rect(s Size) Quadrilateral {
	return Quadrilateral{
		{0, 0},
		{s.Width, 0},
		{s.Width, s.Height},
		{0, s.Height},
	}
}

// QuadrilateralFromPoints copies exactly four points into a Quadrilateral.
// ok is false when len(points) != 4.
func QuadrilateralFromPoints(points []Point) (q Quadrilateral, ok bool) {
	if len(points) != 4 {
		return q, false
	}
	copy(q[:], points)

	return q, true
}
