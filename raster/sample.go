// SPDX-License-Identifier: MIT

package raster

import "math"

// Sample returns the bilinearly interpolated RGBA value at (x, y).
//
// Implementation:
//   - x1 = floor(x), x2 = x1+1 (never ceil, so x2 ≠ x1), same for y.
//   - Weights follow the complementary-area rule:
//     f11=(x2-x)(y2-y) f12=(x2-x)(y-y1) f21=(x-x1)(y2-y) f22=(x-x1)(y-y1).
//   - Weights are computed from the unclamped neighbours; only the reads are
//     clamped to [0,Width-1]×[0,Height-1], so edge pixels extend outward.
//   - Each channel is rounded half to even and clamped to [0,255].
//
// The image must satisfy Validate.
// Complexity: O(1).
func Sample(img *Image, x, y float64) [4]uint8 {
	fx1, fy1 := math.Floor(x), math.Floor(y)
	fx2, fy2 := fx1+1, fy1+1

	f11 := (fx2 - x) * (fy2 - y)
	f12 := (fx2 - x) * (y - fy1)
	f21 := (x - fx1) * (fy2 - y)
	f22 := (x - fx1) * (y - fy1)

	x1 := clampIndex(fx1, img.Width)
	x2 := clampIndex(fx2, img.Width)
	y1 := clampIndex(fy1, img.Height)
	y2 := clampIndex(fy2, img.Height)

	q11 := img.PixOffset(x1, y1)
	q12 := img.PixOffset(x1, y2)
	q21 := img.PixOffset(x2, y1)
	q22 := img.PixOffset(x2, y2)

	var out [4]uint8
	for c := 0; c < Channels; c++ {
		v := f11*float64(img.Pix[q11+c]) +
			f12*float64(img.Pix[q12+c]) +
			f21*float64(img.Pix[q21+c]) +
			f22*float64(img.Pix[q22+c])
		out[c] = clampByte(v)
	}

	return out
}

// clampIndex maps v into [0, n-1]. NaN maps to 0.
func clampIndex(v float64, n int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float64(n-1) {
		return n - 1
	}

	return int(v)
}

// clampByte rounds v to the nearest integer, ties to even, and clamps it
// to [0, 255].
func clampByte(v float64) uint8 {
	v = math.RoundToEven(v)
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
