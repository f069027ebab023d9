// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication (with a matrix×vector dispatch), transpose, and
// Gauss-Jordan inversion with partial pivoting. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.
//   - Operands are never mutated; every kernel allocates a fresh result.

package matrix

import (
	"fmt"
	"math"
)

// SingularEpsilon is the pivot magnitude below which Inverse reports ErrSingular.
// It is fixed for Inverse; use InverseTol to probe low-conditioned inputs.
const SingularEpsilon = 1e-12

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If B has a single column, dispatch to MatVec and return the
//     result as a column matrix.
//   - Stage 3: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At/Set.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Column operand: matrix × vector.
	if b.Cols() == 1 {
		x, err := column(b)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		y, err := MatVec(a, x)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		col, err := NewColumn(y)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}

		return col, nil
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// column extracts the single column of an n×1 matrix as a fresh slice.
func column(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, d.r)
		copy(out, d.data)
		return out, nil
	}
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, 0)
		if err != nil {
			return nil, fmt.Errorf("At(%d,0): %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Works for square and rectangular inputs; the original is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Inverse computes M⁻¹ by Gauss-Jordan elimination on [M | I] with partial
// pivoting, using SingularEpsilon as the singularity tolerance.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m).
//   - Stage 2: copy m into an n×2n scratch buffer and append the identity.
//   - Stage 3: for each pivot column y pick the row in [y, n) with the largest
//     |value|, swap it into place, fail if it is below the tolerance, and
//     eliminate the column downward.
//   - Stage 4: back-substitute upward, normalizing each row by its pivot.
//   - Stage 5: return the right n×n block.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Ties in the pivot search keep the first (lowest) row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the scratch buffer (discarded on return).
func Inverse(m Matrix) (Matrix, error) {
	return inverse(m, SingularEpsilon)
}

// InverseTol is Inverse with an explicit singularity tolerance eps (finite, ≥ 0).
// An invalid eps yields ErrNaNInf.
func InverseTol(m Matrix, eps float64) (Matrix, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}

	return inverse(m, eps)
}

func inverse(m Matrix, eps float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	w := 2 * n
	aug := make([]float64, n*w)

	// [M | I]
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			copy(aug[i*w:i*w+n], d.data[i*n:(i+1)*n])
		}
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				aug[i*w+j] = v
			}
		}
	}
	for i := 0; i < n; i++ {
		aug[i*w+n+i] = 1
	}

	if err := gaussJordan(aug, n, w, eps); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return res, nil
}

// gaussJordan reduces the left n×n block of the row-major n×w buffer a to the
// identity in place. Returns ErrSingular when a pivot is below eps.
func gaussJordan(a []float64, n, w int, eps float64) error {
	var x, y, y2 int
	var f float64

	for y = 0; y < n; y++ {
		// partial pivoting
		maxRow := argmaxAbsColumn(a, w, y, y, n)
		if maxRow != y {
			swapRows(a, w, maxRow, y)
		}

		pivot := a[y*w+y]
		if math.Abs(pivot) < eps {
			return fmt.Errorf("pivot %d (|%g| < %g): %w", y, pivot, eps, ErrSingular)
		}

		// eliminate column y below the pivot
		for y2 = y + 1; y2 < n; y2++ {
			f = a[y2*w+y] / pivot
			if f == 0 {
				continue
			}
			for x = y; x < w; x++ {
				a[y2*w+x] -= a[y*w+x] * f
			}
		}
	}

	// back-substitute
	for y = n - 1; y >= 0; y-- {
		pivot := a[y*w+y]
		for y2 = 0; y2 < y; y2++ {
			f = a[y2*w+y] / pivot
			if f == 0 {
				continue
			}
			for x = w - 1; x >= y; x-- {
				a[y2*w+x] -= a[y*w+x] * f
			}
		}

		a[y*w+y] = 1
		for x = n; x < w; x++ {
			a[y*w+x] /= pivot
		}
	}

	return nil
}

// argmaxAbsColumn returns the row in [from, to) holding the largest |a[row, col]|.
// The first row wins on ties.
func argmaxAbsColumn(a []float64, w, col, from, to int) int {
	best := from
	bestVal := math.Abs(a[from*w+col])
	for i := from + 1; i < to; i++ {
		if v := math.Abs(a[i*w+col]); v > bestVal {
			best, bestVal = i, v
		}
	}

	return best
}

// swapRows exchanges rows r1 and r2 of a row-major buffer of width w.
func swapRows(a []float64, w, r1, r2 int) {
	o1, o2 := r1*w, r2*w
	for x := 0; x < w; x++ {
		a[o1+x], a[o2+x] = a[o2+x], a[o1+x]
	}
}
