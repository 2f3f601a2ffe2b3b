// SPDX-License-Identifier: MIT
// Package matrix: quantities derived from LU (determinant, inverse) and the trace.

package matrix

import "errors"

// Det returns det(m) = sign(P) · ∏ U[i,i].
// A matrix that LU flags as singular has determinant 0; that is a valid
// answer, so ErrSingular is absorbed here and never returned.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//
// Complexity: O(n^3).
func Det(m *Dense, opts ...Option) (float64, error) {
	f, err := LU(m, opts...)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	defer f.Release()

	n := f.U.r
	det := f.Sign()
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}

// Trace returns Σ m[i,i] for a square m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.r
	sum := ZeroSum
	for i := 0; i < n; i++ {
		sum += m.data[i*n+i]
	}

	return sum, nil
}

// Inverse computes m⁻¹ by solving m·X = I column by column.
// Implementation:
//   - Stage 1: LU with partial pivoting (validates live/square, detects singularity).
//   - Stage 2: for each basis vector e_col, forward then back substitution;
//     write the solution into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer f.Release()

	n := m.r
	inv, err := newLike(m, n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		clear(e)
		e[col] = 1.0
		f.solveInto(x, e)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
