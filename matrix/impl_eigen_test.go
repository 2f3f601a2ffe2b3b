// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the general eigen-decomposition.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// requireEigen checks A·X = X·Λ, X·Λ·X⁻¹ = A, unit eigenvectors and
// descending eigenvalues; it returns the eigenvalues.
func requireEigen(t *testing.T, a *matrix.Dense, eps float64) []float64 {
	t.Helper()
	snap := Snapshot(t, a)
	f, err := matrix.Eigen(a)
	require.NoError(t, err)
	defer f.Release()

	RequireClose(t, MustMul(t, a, f.X), MustMul(t, f.X, f.Lambda), eps)
	RequireClose(t, a, MustMul(t, MustMul(t, f.X, f.Lambda), f.XInv), eps)
	RequireClose(t, MustIdentity(t, a.Rows()), MustMul(t, f.X, f.XInv), eps)

	n := a.Rows()
	var i, j int
	for j = 0; j < n; j++ {
		norm := 0.0
		for i = 0; i < n; i++ {
			norm = math.Hypot(norm, MustAt(t, f.X, i, j))
		}
		require.InDelta(t, 1.0, norm, tol, "column %d", j)
	}
	values := f.Values()
	for i = 1; i < n; i++ {
		require.LessOrEqual(t, values[i], values[i-1])
	}
	RequireUnchanged(t, snap, a)

	return values
}

func TestEigen_Symmetric2x2(t *testing.T) {
	values := requireEigen(t, FromRows(t, [][]float64{{2, 1}, {1, 2}}), tol)
	RequireSliceClose(t, []float64{3, 1}, values, tol)
}

func TestEigen_NonSymmetric(t *testing.T) {
	values := requireEigen(t, FromRows(t, [][]float64{{4, 1}, {2, 3}}), tol)
	RequireSliceClose(t, []float64{5, 2}, values, tol)

	values = requireEigen(t, FromRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}}), tol)
	RequireSliceClose(t, []float64{6, 4, 1}, values, tol)
}

// TestEigen_Similarity: A = S·D·S⁻¹ has the diagonal of D as its spectrum.
func TestEigen_Similarity(t *testing.T) {
	S := FromRows(t, [][]float64{
		{1, 2, 0, 0},
		{0, 1, 3, 0},
		{1, 0, 1, 0},
		{0, 0, 2, 1},
	})
	Sinv, err := matrix.Inverse(S)
	require.NoError(t, err)
	D := FromRows(t, [][]float64{
		{4, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, 2},
	})
	a := MustMul(t, MustMul(t, S, D), Sinv)

	values := requireEigen(t, a, 1e-8)
	RequireSliceClose(t, []float64{4, 3, 2, -1}, values, 1e-8)
}

func TestEigen_RandomSymmetric(t *testing.T) {
	requireEigen(t, RandSymmetric(t, 7, 2024), 1e-8)
}

func TestEigen_RepeatedEigenvalue(t *testing.T) {
	// identity: one cluster of multiplicity 3, X = I
	values := requireEigen(t, MustIdentity(t, 3), tol)
	RequireSliceClose(t, []float64{1, 1, 1}, values, tol)

	// diagonalizable with a double eigenvalue 2 and a simple 5
	values = requireEigen(t, FromRows(t, [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 5}}), tol)
	RequireSliceClose(t, []float64{5, 2, 2}, values, tol)

	// zero matrix
	values = requireEigen(t, MustDense(t, 2, 2), tol)
	RequireSliceClose(t, []float64{0, 0}, values, 0)
}

func TestEigen_EigenvectorSign(t *testing.T) {
	f, err := matrix.Eigen(FromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	h := 1 / math.Sqrt2
	// λ=1 → (1,1)/√2 ; λ=-1 → ±(1,-1)/√2 with the first largest entry positive
	RequireRows(t, [][]float64{{h, h}, {h, -h}}, f.X, tol)
}

func TestEigen_NotDiagonalizable(t *testing.T) {
	cases := map[string][][]float64{
		"rotation":     {{0, -1}, {1, 0}},
		"jordan":       {{2, 1}, {0, 2}},
		"complex in 3": {{0, -1, 0}, {1, 0, 0}, {0, 0, 2}},
		"jordan in 3":  {{3, 1, 0}, {0, 3, 0}, {0, 0, 1}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Eigen(FromRows(t, rows))
			require.ErrorIs(t, err, matrix.ErrNotDiagonalizable)
		})
	}
}

// TestEigen_ScaleInvariant: a uniform rescaling of A changes neither the
// diagonalizability verdict nor the relative accuracy of X·Λ·X⁻¹.
func TestEigen_ScaleInvariant(t *testing.T) {
	diagonalizable := map[string][][]float64{
		"triangular": {{1, 1}, {0, 2}},
		"general":    {{4, 1}, {2, 3}},
		"diagonal":   {{2, 0, 0}, {0, 2, 0}, {0, 0, 5}},
	}
	defective := map[string][][]float64{
		"jordan":      {{1, 1}, {0, 1}},
		"jordan in 3": {{3, 1, 0}, {0, 3, 0}, {0, 0, 1}},
	}
	for _, s := range []float64{1e-8, 1e-7, 1, 1e7, 1e8} {
		for name, rows := range diagonalizable {
			t.Run(fmt.Sprintf("%s s=%g", name, s), func(t *testing.T) {
				a := FromRows(t, rows)
				require.NoError(t, matrix.Scale(a, s))
				f, err := matrix.Eigen(a)
				require.NoError(t, err)
				defer f.Release()

				recon := MustMul(t, MustMul(t, f.X, f.Lambda), f.XInv)
				require.NoError(t, matrix.Scale(recon, 1/s))
				RequireRows(t, rows, recon, tol)
			})
		}
		for name, rows := range defective {
			t.Run(fmt.Sprintf("%s s=%g", name, s), func(t *testing.T) {
				a := FromRows(t, rows)
				require.NoError(t, matrix.Scale(a, s))
				_, err := matrix.Eigen(a)
				require.ErrorIs(t, err, matrix.ErrNotDiagonalizable)
			})
		}
	}
}

func TestEigen_Errors(t *testing.T) {
	_, err := matrix.Eigen(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Eigen(Released(t))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Eigen(RandSymmetric(t, 6, 5), matrix.WithMaxIterations(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)
}

func TestHessenberg_Structure(t *testing.T) {
	const n = 5
	a := RandDense(t, n, n, 11)
	h := append([]float64(nil), matrix.RawData(a)...)
	matrix.ExportedToHessenberg(h, n)

	var i, j int
	traceA, traceH := 0.0, 0.0
	for i = 0; i < n; i++ {
		for j = 0; j < i-1; j++ {
			require.Zero(t, h[i*n+j], "h[%d,%d]", i, j)
		}
		traceA += MustAt(t, a, i, i)
		traceH += h[i*n+i]
	}
	assert.InDelta(t, traceA, traceH, tol, "similarity preserves the trace")
}

func TestEigen2x2AndShift(t *testing.T) {
	l1, l2, err := matrix.ExportedEigen2x2(4, 1, 2, 3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5, l1, tol)
	assert.InDelta(t, 2, l2, tol)

	_, _, err = matrix.ExportedEigen2x2(0, -1, 1, 0, 1e-12)
	require.ErrorIs(t, err, matrix.ErrNotDiagonalizable)

	// the shift is the eigenvalue closer to d
	assert.InDelta(t, 2, matrix.ExportedWilkinsonShift(4, 1, 2, 3), tol)
	assert.Equal(t, 0.0, matrix.ExportedWilkinsonShift(0, -1, 1, 0))
}

func TestNullSpace(t *testing.T) {
	// rank 1: x + 2y + 3z = 0 has a 2-dimensional solution space
	b := []float64{1, 2, 3, 2, 4, 6, 3, 6, 9}
	basis := matrix.ExportedNullSpace(b, 3, 1e-9)
	require.Len(t, basis, 2)
	for _, x := range basis {
		assert.InDelta(t, 0, x[0]+2*x[1]+3*x[2], tol)
		assert.InDelta(t, 1, math.Hypot(math.Hypot(x[0], x[1]), x[2]), tol)
	}

	full := []float64{1, 0, 0, 1}
	require.Empty(t, matrix.ExportedNullSpace(full, 2, 1e-9))
}
