// SPDX-License-Identifier: MIT

package warp

import (
	"fmt"

	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/matrix"
)

const (
	opDistortMatrix = "DistortMatrix"
	opSolveMapping  = "SolveMapping"
)

// Lift returns the bilinear feature vector (x, y, x·y, 1) of p.
func Lift(p geometry.Point) [4]float64 {
	return [4]float64{p.X, p.Y, p.X * p.Y, 1}
}

// DistortMatrix solves the 4×4 matrix M with M · Lift(dst[i]) = Lift(src[i]).
//
// Implementation:
//   - Stage 1: require exactly four corners on both sides.
//   - Stage 2: build Src and Dst with the lifted corners as columns.
//   - Stage 3: M = Src × Dst⁻¹.
//
// Errors:
//   - ErrInvalidCornerCount, or matrix.ErrSingular when Dst is degenerate
//     (collinear or repeated destination corners).
func DistortMatrix(src, dst []geometry.Point) (matrix.Matrix, error) {
	return distortMatrix(src, dst, DefaultTolerance)
}

func distortMatrix(src, dst []geometry.Point, eps float64) (matrix.Matrix, error) {
	if len(src) != 4 || len(dst) != 4 {
		return nil, warpErrorf(fmt.Sprintf("%s(%d,%d)", opDistortMatrix, len(src), len(dst)), ErrInvalidCornerCount)
	}

	srcM, err := liftedColumns(src)
	if err != nil {
		return nil, warpErrorf(opDistortMatrix, err)
	}
	dstM, err := liftedColumns(dst)
	if err != nil {
		return nil, warpErrorf(opDistortMatrix, err)
	}

	dstInv, err := matrix.InverseTol(dstM, eps)
	if err != nil {
		return nil, warpErrorf(opDistortMatrix, err)
	}
	m, err := matrix.Mul(srcM, dstInv)
	if err != nil {
		return nil, warpErrorf(opDistortMatrix, err)
	}

	return m, nil
}

// liftedColumns returns the 4×4 matrix whose column j is Lift(points[j]).
func liftedColumns(points []geometry.Point) (matrix.Matrix, error) {
	rows := make([][]float64, len(points))
	for j, p := range points {
		l := Lift(p)
		rows[j] = l[:]
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(m)
}

// Mapping translates a destination pixel to a source coordinate using the
// first two rows of a solved DistortMatrix.
type Mapping struct {
	coef [2][4]float64
}

// SolveMapping fits the mapping from the rectangle (0,0),(w,0),(w,h),(0,h)
// onto the source corners.
func SolveMapping(src geometry.Quadrilateral, dst geometry.Size) (*Mapping, error) {
	return solveMapping(src, dst, DefaultTolerance)
}

func solveMapping(src geometry.Quadrilateral, dst geometry.Size, eps float64) (*Mapping, error) {
	m, err := distortMatrix(src.Points(), geometry.Rect(dst).Points(), eps)
	if err != nil {
		return nil, warpErrorf(opSolveMapping, err)
	}

	mp := &Mapping{}
	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			v, err := m.At(i, k)
			if err != nil {
				return nil, warpErrorf(opSolveMapping, err)
			}
			mp.coef[i][k] = v
		}
	}

	return mp, nil
}

// Apply maps the destination coordinate (x, y) to the source (xs, ys).
func (mp *Mapping) Apply(x, y float64) (xs, ys float64) {
	xy := x * y
	xs = mp.coef[0][0]*x + mp.coef[0][1]*y + mp.coef[0][2]*xy + mp.coef[0][3]
	ys = mp.coef[1][0]*x + mp.coef[1][1]*y + mp.coef[1][2]*xy + mp.coef[1][3]

	return xs, ys
}

// ApplyPoint is Apply on a geometry.Point.
func (mp *Mapping) ApplyPoint(p geometry.Point) geometry.Point {
	xs, ys := mp.Apply(p.X, p.Y)

	return geometry.Point{X: xs, Y: ys}
}

// Matrix returns the 2×4 coefficients as a fresh Dense.
func (mp *Mapping) Matrix() *matrix.Dense {
	// Shape is fixed, NewFromRows cannot fail here.
	m, _ := matrix.NewFromRows([][]float64{mp.coef[0][:], mp.coef[1][:]})

	return m
}
