// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/docwarp/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Mul ----------

func TestMul_MatrixMatrix(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c)

	// fallback path must agree with the fast path
	c2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c2)

	// operands untouched
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
}

func TestMul_DispatchesToMatVec(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 1}, {0, 1}})
	v, err := matrix.NewColumn([]float64{10, 5})
	require.NoError(t, err)

	out, err := matrix.Mul(a, v)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 1, out.Cols())
	CompareExact(t, [][]float64{{15}, {5}}, out)

	out2, err := matrix.Mul(hide{a}, hide{v})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{15}, {5}}, out2)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- MatVec ----------

// TestMatVec_Identity checks multiply(Identity, v) == v for arbitrary vectors.
func TestMatVec_Identity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			v := make([]float64, n)
			for i := range v {
				v[i] = float64(i*i) - 3.5
			}
			got, err := matrix.MatVec(I, v)
			require.NoError(t, err)
			require.Equal(t, v, got)

			got, err = matrix.MatVec(hide{I}, v)
			require.NoError(t, err)
			require.Equal(t, v, got)
		})
	}
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	_, err := matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in, wantT [][]float64
	}{
		{"2x2", [][]float64{{0, 1}, {2, 3}}, [][]float64{{0, 2}, {1, 3}}},
		{"3x3", [][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, [][]float64{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}}},
		{"2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, [][]float64{{1, 4}, {2, 5}, {3, 6}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.in)
			tr, err := matrix.Transpose(m)
			require.NoError(t, err)
			CompareExact(t, tc.wantT, tr)

			// involution, and the input is left alone
			back, err := matrix.Transpose(hide{tr})
			require.NoError(t, err)
			CompareExact(t, tc.in, back)
			CompareExact(t, tc.in, m)
		})
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Inverse ----------

var inverseFixtures = []struct {
	name     string
	in, want [][]float64
}{
	{"1x1", [][]float64{{1}}, [][]float64{{1}}},
	{"identity 2x2", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1}}},
	{"permutation 3x3", [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}, [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}},
	{"signs 3x3", [][]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, [][]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}},
	{
		"integer 8x8",
		[][]float64{
			{9, 21, 23, 8, 18, 7, 12, 7},
			{8, 13, 15, 5, 10, 5, 9, 6},
			{0, 13, 11, 2, 13, 1, 3, 0},
			{13, 11, 16, 13, 6, 11, 13, 10},
			{11, 21, 23, 7, 17, 7, 13, 8},
			{10, 8, 12, 9, 4, 8, 10, 8},
			{11, 16, 19, 7, 12, 7, 12, 8},
			{6, 12, 14, 6, 10, 5, 8, 5},
		},
		[][]float64{
			{0, 2, -1, 2, 1, -3, -2, 0},
			{-1, 1, 2, -1, -2, 2, 2, -1},
			{2, 1, 1, -1, -5, 1, 4, -2},
			{-2, 4, 0, 2, 0, -3, -2, 2},
			{0, -1, -3, 2, 6, -3, -6, 2},
			{4, -7, 0, -3, 0, 5, 3, -4},
			{-3, -4, 1, -1, 1, 1, 3, 3},
			{0, 3, -2, 1, 4, -1, -7, 1},
		},
	},
}

// TestInverse_Fixtures checks known inverses in both directions after rounding.
func TestInverse_Fixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range inverseFixtures {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := matrix.Inverse(MustRows(t, tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, Rounded(t, inv))

			back, err := matrix.Inverse(MustRows(t, tc.want))
			require.NoError(t, err)
			require.Equal(t, tc.in, Rounded(t, back))

			viaFallback, err := matrix.Inverse(hide{MustRows(t, tc.in)})
			require.NoError(t, err)
			require.Equal(t, tc.want, Rounded(t, viaFallback))
		})
	}
}

// TestInverse_Identities checks A⁻¹A ≈ I, AA⁻¹ ≈ I and (A⁻¹)⁻¹ ≈ A.
func TestInverse_Identities(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 6, 9} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagonallyDominant(t, n, int64(n)*31)
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)

			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)

			left, err := matrix.Mul(inv, a)
			require.NoError(t, err)
			RequireClose(t, left, I, 1e-9)

			right, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			RequireClose(t, right, I, 1e-9)

			twice, err := matrix.Inverse(inv)
			require.NoError(t, err)
			RequireClose(t, twice, a, 1e-9)
		})
	}
}

// TestInverse_NeedsPivoting uses a zero leading entry that only row swaps can handle.
func TestInverse_NeedsPivoting(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, inv)
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := [][]float64{{4, 7}, {2, 6}}
	a := MustRows(t, in)
	_, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareExact(t, in, a)
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// rank-deficient: second row is twice the first
	_, err = matrix.Inverse(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	// all zeros
	_, err = matrix.Inverse(MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverseTol_LowConditioned shows the fixed tolerance rejecting a tiny pivot
// that a looser explicit tolerance accepts.
func TestInverseTol_LowConditioned(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 0}, {0, 1e-13}})

	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.InverseTol(a, 1e-15)
	require.NoError(t, err)
	require.InDelta(t, 1e13, MustAt(t, inv, 1, 1), 1)

	_, err = matrix.InverseTol(a, -1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.Less(t, matrix.SingularEpsilon, 1e-11)
}

// ---------- AllClose ----------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4 + 1e-10}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 3, 2), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
