// Package geometry holds the pixel-space primitives shared by the warp engine
// and the interactive corner editor.
//
// What:
//
//   - Point, Size, Segment and Quadrilateral (fixed winding
//     TopLeft, TopRight, BottomRight, BottomLeft).
//   - IsConvexQuadrilateral: the diagonals [TR, BL] and [TL, BR] must cross.
//   - FindNearestPointWithinDistance: corner hit-testing for drag handles.
//   - Helpers for editor layout: MidwayPoint, IsLowerRight, ScaleSize,
//     MultiplySize, FitRatio, DefaultCorners, MapQuadrilateral.
//
// Why:
//
//   - The warp solver assumes a well-formed, consistently ordered corner set;
//     the editor uses this package to reject edits before they reach it.
//
// Complexity:
//
//   - Every predicate is O(1); FindNearestPointWithinDistance is O(n log n).
//
// Errors:
//
//   - None. Degenerate inputs (collinear or touching diagonals) are reported
//     as non-convex rather than as errors.
package geometry
