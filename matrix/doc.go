// Package matrix is a small dense linear-algebra engine for float64 matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked accessors.
//   - Mul / MatVec / Transpose kernels that never mutate their operands.
//   - Inverse, a Gauss-Jordan elimination with partial pivoting that fails
//     with ErrSingular when no pivot exceeds SingularEpsilon.
//   - AllClose for tolerance-based comparisons in tests and callers.
//
// The package is sized for the small systems the warp solver builds (4×4),
// but nothing in it assumes a fixed dimension.
//
// See the examples in this package for usage patterns.
package matrix
