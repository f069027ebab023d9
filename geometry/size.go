// SPDX-License-Identifier: MIT

package geometry

// MultiplySize multiplies a and b component-wise.
func MultiplySize(a, b Size) Size {
	return Size{Width: a.Width * b.Width, Height: a.Height * b.Height}
}

// ScaleSize multiplies both dimensions of s by k.
func ScaleSize(s Size, k float64) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// FitRatio returns the uniform scale applied to content when shown in
// container. The larger content dimension drives the ratio: landscape content
// is fitted to the container width, portrait or square content to its height.
// An empty content size yields 0.
func FitRatio(content, container Size) float64 {
	if content.Empty() {
		return 0
	}
	if content.Width > content.Height {
		return container.Width / content.Width
	}

	return container.Height / content.Height
}

// DefaultCorners returns the corners of s pulled inward by inset on every side,
// in [TL, TR, BR, BL] order.
func DefaultCorners(s Size, inset float64) Quadrilateral {
	return Quadrilateral{
		{inset, inset},
		{s.Width - inset, inset},
		{s.Width - inset, s.Height - inset},
		{inset, s.Height - inset},
	}
}

// MapQuadrilateral applies fn to every corner of q, preserving winding order.
func MapQuadrilateral[T any](q Quadrilateral, fn func(Point) T) [4]T {
	return [4]T{fn(q[0]), fn(q[1]), fn(q[2]), fn(q[3])}
}

// ScaleQuadrilateral multiplies every corner of q by k.
func ScaleQuadrilateral(q Quadrilateral, k float64) Quadrilateral {
	return Quadrilateral(MapQuadrilateral(q, func(p Point) Point { return p.Scale(k) }))
}

// Contains reports whether p lies in [0, Width) × [0, Height).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}
