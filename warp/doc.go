// Package warp solves the corner mapping and resamples a photographed page
// into an upright rectangle.
//
// Model:
//
//	Every destination pixel (x, y) is lifted to the 4-feature vector
//	(x, y, x·y, 1). A 4×4 matrix M is solved so that M · Lift(dst_i) =
//	Lift(src_i) for the four corners i; the first two rows of M map any
//	destination pixel to a source coordinate. This is a bilinear fit, not a
//	projective homography: straight lines through the interior of a strongly
//	skewed quadrilateral bend slightly.
//
// Pipeline (Distort):
//
//  1. Validate the source buffer and resolve the target size (default: the
//     source dimensions).
//  2. Solve M = Src × Dst⁻¹ with Gauss-Jordan inversion.
//  3. For each destination pixel in row-major order, apply the mapping and
//     sample the source bilinearly (raster.Sample clamps at the edges).
//
// Errors:
//
//   - ErrInvalidCornerCount - a corner list does not hold exactly four points.
//   - ErrNilImage           - the source is nil.
//   - ErrInvalidTargetSize  - a negative target dimension was requested.
//   - matrix.ErrSingular    - the destination corner system cannot be inverted.
//
// On error no destination buffer is returned.
package warp
