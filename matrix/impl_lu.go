// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and triangular solves.

package matrix

import (
	"fmt"
	"math"
)

// LU computes P·A = L·U with partial (row) pivoting.
// Implementation:
//   - Stage 1: validate m (live, square); copy A into the working U; L = 0; Perm = identity.
//   - Stage 2: for each pivot column k pick the row p ≥ k with the largest |U[p,k]|.
//     If that magnitude is ≤ ε·max|A| the matrix is singular. Otherwise swap rows
//     k and p (U entirely, L in columns < k, Perm), then eliminate below the pivot,
//     storing multipliers in L[i,k].
//   - Stage 3: set diag(L) = 1.
//
// Behavior highlights:
//   - m is never mutated; L, U are freshly allocated.
//   - The pivot tolerance is relative to the largest entry of A, so uniformly
//     scaled inputs factor identically.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch), ErrSingular.
//
// Determinism:
//   - Ties in the pivot search keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m *Dense, opts ...Option) (*LUResult, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.r
	U := m.Clone()
	L, err := newLike(m, n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	tol := o.eps * maxAbs(m.data)
	var (
		i, j, k, p   int
		swaps        int
		best, v, f   float64
		rowK, rowI   int
		u, l         = U.data, L.data
		pivot        float64
		rowP, offset int
	)
	for k = 0; k < n; k++ {
		// Pivot search over the remaining rows of column k.
		p, best = k, math.Abs(u[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(u[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, best, tol, ErrSingular))
		}

		// Row exchange, recorded in Perm.
		if p != k {
			rowK, rowP = k*n, p*n
			for j = 0; j < n; j++ {
				u[rowK+j], u[rowP+j] = u[rowP+j], u[rowK+j]
			}
			for j = 0; j < k; j++ {
				l[rowK+j], l[rowP+j] = l[rowP+j], l[rowK+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}

		// Eliminate below the pivot.
		rowK = k * n
		pivot = u[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = u[rowI+k] / pivot
			l[rowI+k] = f
			u[rowI+k] = 0
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				offset = rowI + j
				u[offset] -= f * u[rowK+j]
			}
		}
	}
	for i = 0; i < n; i++ {
		l[i*n+i] = 1.0
	}

	return &LUResult{L: L, U: U, Perm: perm, swaps: swaps}, nil
}

// Solve returns x with A·x = b using the stored factors.
// Implementation:
//   - Forward substitution L·y = P·b (top-down), then back substitution U·x = y.
//
// Errors:
//   - ErrNilMatrix (released factors or nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (r *LUResult) Solve(b []float64) ([]float64, error) {
	if err := ValidateNotNilAll(r.L, r.U); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	n := r.U.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	x := make([]float64, n)
	r.solveInto(x, b)

	return x, nil
}

// solveInto is Solve without validation; x and b must both have length n
// and must not alias.
func (r *LUResult) solveInto(x, b []float64) {
	n := r.U.r
	l, u := r.L.data, r.U.data
	var i, k, base int
	var sum float64

	// L·y = P·b, y stored in x.
	for i = 0; i < n; i++ {
		sum = b[r.Perm[i]]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= l[base+k] * x[k]
		}
		x[i] = sum // unit diagonal
	}
	// U·x = y, in place.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= u[base+k] * x[k]
		}
		x[i] = sum / u[base+i]
	}
}
