// SPDX-License-Identifier: MIT
// Package matrix_test cross-checks the kernels against gonum/mat as a reference.
package matrix_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densela/matrix"
)

// toGonum copies m into a gonum dense matrix.
func toGonum(t *testing.T, m *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range ToRows(t, m) {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

var oracleSizes = []int{2, 3, 5, 8}

func TestOracle_DetAndInverse(t *testing.T) {
	for _, n := range oracleSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandDense(t, n, n, int64(1000+n))
			g := toGonum(t, a)

			det, err := matrix.Det(a)
			require.NoError(t, err)
			assert.InDelta(t, mat.Det(g), det, tol)

			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			var ginv mat.Dense
			require.NoError(t, ginv.Inverse(g))
			RequireClose(t, inv, fromGonum(t, &ginv), 1e-8)
		})
	}
}

func TestOracle_SingularValues(t *testing.T) {
	for _, shape := range [][2]int{{3, 3}, {6, 4}, {4, 6}, {8, 8}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := RandDense(t, shape[0], shape[1], int64(shape[0]*100+shape[1]))

			f, err := matrix.SVD(a)
			require.NoError(t, err)
			var svd mat.SVD
			require.True(t, svd.Factorize(toGonum(t, a), mat.SVDNone))
			RequireSliceClose(t, svd.Values(nil), f.Values(), tol)
		})
	}
}

func TestOracle_SymmetricEigenvalues(t *testing.T) {
	for _, n := range oracleSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := RandSymmetric(t, n, int64(2000+n))
			data := make([]float64, 0, n*n)
			for _, row := range ToRows(t, a) {
				data = append(data, row...)
			}
			var es mat.EigenSym
			require.True(t, es.Factorize(mat.NewSymDense(n, data), false))
			want := es.Values(nil) // ascending

			values, _, err := matrix.EigenSym(a)
			require.NoError(t, err)
			sort.Float64s(values)
			RequireSliceClose(t, want, values, tol)

			f, err := matrix.Eigen(a)
			require.NoError(t, err)
			got := f.Values()
			sort.Float64s(got)
			RequireSliceClose(t, want, got, 1e-8)
		})
	}
}

// fromGonum copies a gonum matrix into a *matrix.Dense.
func fromGonum(t *testing.T, g mat.Matrix) *matrix.Dense {
	t.Helper()
	r, c := g.Dims()
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, g.At(i, j)))
		}
	}

	return m
}
