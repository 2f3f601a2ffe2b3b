// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// tol is the default absolute tolerance for floating-point comparisons.
const tol = 1e-9

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows builds a *Dense from a non-empty rectangular literal.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		require.Len(t, row, c, "ragged literal")
		flat = append(flat, row...)
	}
	m, err := matrix.NewDenseFrom(r, c, flat)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return I
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// ToRows copies m into a [][]float64 (row-major), for comparisons and oracles.
func ToRows(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

// RandDense returns an r×c matrix with entries uniform in [-1, 1) from a fixed seed.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// RandSymmetric returns (R + Rᵀ)/2 for a random n×n R; exactly symmetric.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	R := RandDense(t, n, n, seed)
	S := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := 0.5 * (MustAt(t, R, i, j) + MustAt(t, R, j, i))
			require.NoError(t, S.Set(i, j, v))
			require.NoError(t, S.Set(j, i, v))
		}
	}

	return S
}

// MustMul returns a × b or fails the test.
func MustMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.Product(a, b)
	require.NoError(t, err)

	return out
}

// MustT returns aᵀ or fails the test.
func MustT(t testing.TB, a *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.TransposeOf(a)
	require.NoError(t, err)

	return out
}

// RequireClose fails unless want and got have the same shape and every
// entry agrees within eps (absolute).
func RequireClose(t testing.TB, want, got *matrix.Dense, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	if diff := cmp.Diff(ToRows(t, want), ToRows(t, got), cmpopts.EquateApprox(0, eps)); diff != "" {
		t.Fatalf("matrices differ (-want +got):\n%s", diff)
	}
}

// RequireRows is RequireClose against a literal.
func RequireRows(t testing.TB, want [][]float64, got *matrix.Dense, eps float64) {
	t.Helper()
	RequireClose(t, FromRows(t, want), got, eps)
}

// RequireSliceClose compares float slices within eps.
func RequireSliceClose(t testing.TB, want, got []float64, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}

// RequireOrthogonal checks QᵀQ = I.
func RequireOrthogonal(t testing.TB, q *matrix.Dense, eps float64) {
	t.Helper()
	RequireClose(t, MustIdentity(t, q.Cols()), MustMul(t, MustT(t, q), q), eps)
}

// RequireUpperTriangular checks m[i,j] == 0 for i > j.
func RequireUpperTriangular(t testing.TB, m *matrix.Dense) {
	t.Helper()
	var i, j int
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			require.Zero(t, MustAt(t, m, i, j), "entry (%d,%d) below the diagonal", i, j)
		}
	}
}

// Snapshot copies the contents of m; compare later with RequireUnchanged.
func Snapshot(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	return ToRows(t, m)
}

// RequireUnchanged checks that m still holds exactly the snapshot.
func RequireUnchanged(t testing.TB, snap [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, snap, ToRows(t, m), "output modified by a failed call")
}

// Released returns a 2×2 matrix that has already been released.
func Released(t testing.TB) *matrix.Dense {
	t.Helper()
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Release())

	return m
}

// MaxAbsDiag returns max |m[i,i]|, used to scale tolerances.
func MaxAbsDiag(t testing.TB, m *matrix.Dense) float64 {
	t.Helper()
	s := 0.0
	for i := 0; i < min(m.Rows(), m.Cols()); i++ {
		s = math.Max(s, math.Abs(MustAt(t, m, i, i)))
	}

	return s
}
