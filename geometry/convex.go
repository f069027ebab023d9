// SPDX-License-Identifier: MIT

package geometry

// crossZ returns the z component of AB × BP for point p and segment [a, b].
//
//	AB × BP = (bx-ax)*(py-by) - (by-ay)*(px-bx)
//
// Its sign tells on which side of the line (a, b) the point p lies; zero means
// p is collinear with the segment.
func crossZ(p Point, s Segment) float64 {
	return (s.B.X-s.A.X)*(p.Y-s.B.Y) - (s.B.Y-s.A.Y)*(p.X-s.B.X)
}

// SegmentsIntersect reports whether segments s and t properly cross.
//
// For s = AB and t = CD the endpoints A and B must lie strictly on opposite
// sides of CD, and C and D strictly on opposite sides of AB. Touching or
// collinear configurations yield false.
func SegmentsIntersect(s, t Segment) bool {
	return crossZ(s.A, t)*crossZ(s.B, t) < 0 &&
		crossZ(t.A, s)*crossZ(t.B, s) < 0
}

// IsConvexQuadrilateral reports whether q, in [TL, TR, BR, BL] order, is a
// strictly convex quadrilateral: its diagonals [TR, BL] and [TL, BR] cross.
//
// A self-intersecting ("bow-tie") quad, a quad with a reflex corner, and any
// degenerate quad with three collinear corners all return false.
func IsConvexQuadrilateral(q Quadrilateral) bool {
	return SegmentsIntersect(
		Segment{q[TopRight], q[BottomLeft]},
		Segment{q[TopLeft], q[BottomRight]},
	)
}

// MidwayPoint returns the middle of the segment [p1, p2].
func MidwayPoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// IsLowerRight reports whether p lies strictly below the anti-diagonal of a
// rectangle of the given size anchored at the origin, i.e. in the triangle
// touching (W, H):
//
//	(0,0) ________ (W,0)
//	     |      /|
//	     |    /  |
//	     |  /  x |
//	     |/______|
//	(0,H)        (W,H)
//
// The anti-diagonal is y = H - (H/W)·x.
func IsLowerRight(s Size, p Point) bool {
	return s.Height-(s.Height/s.Width)*p.X < p.Y
}
