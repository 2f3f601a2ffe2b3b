// SPDX-License-Identifier: MIT
// Package matrix: shape primitives (classification, transpose, submatrix).

package matrix

import "fmt"

// Classify reports how the shapes of a and b relate.
// A square matrix paired with another of the same order is ShapeEqual:
// equality is checked before the transposed relation.
//
// Errors:
//   - ErrNilMatrix if either operand is nil or released.
//
// Complexity: O(1).
func Classify(a, b *Dense) (ShapeRelation, error) {
	if err := ValidateNotNilAll(a, b); err != nil {
		return ShapeIncompatible, matrixErrorf(opClassify, err)
	}
	switch {
	case a.r == b.r && a.c == b.c:
		return ShapeEqual, nil
	case a.r == b.c && a.c == b.r:
		return ShapeTransposed, nil
	default:
		return ShapeIncompatible, nil
	}
}

// Transpose writes aᵀ into out.
// Implementation:
//   - Stage 1: validate a, out live and out shaped a.Cols()×a.Rows().
//   - Stage 2: scatter a[i,j] → out[j,i]. When out == a (square in-place),
//     swap across the diagonal instead.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Transpose(a, out *Dense) error {
	if err := ValidateNotNilAll(a, out); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateShape(out, a.c, a.r); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	rows, cols := a.r, a.c
	var i, j, baseSrc int
	if out == a {
		// in-place: square by the shape check above
		for i = 0; i < rows; i++ {
			for j = i + 1; j < cols; j++ {
				a.data[i*cols+j], a.data[j*cols+i] = a.data[j*cols+i], a.data[i*cols+j]
			}
		}

		return nil
	}
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = a.data[baseSrc+j]
		}
	}

	return nil
}

// Submatrix writes into out the (r-1)×(c-1) matrix obtained by deleting
// row exRow and column exCol of a. Used by cofactor-style computations.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when a has a single row or column, or out is mis-shaped.
//   - ErrOutOfRange (matches ErrDimensionMismatch) when an index is outside a.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Submatrix(a *Dense, exRow, exCol int, out *Dense) error {
	if err := ValidateNotNilAll(a, out); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}
	if a.r < 2 || a.c < 2 {
		return matrixErrorf(opSubmatrix, ErrDimensionMismatch)
	}
	if exRow < 0 || exRow >= a.r || exCol < 0 || exCol >= a.c {
		return matrixErrorf(opSubmatrix, fmt.Errorf("exclude (%d,%d): %w", exRow, exCol, ErrOutOfRange))
	}
	if err := ValidateShape(out, a.r-1, a.c-1); err != nil {
		return matrixErrorf(opSubmatrix, err)
	}

	var i, j, di, dj int
	for i = 0; i < a.r; i++ {
		if i == exRow {
			continue
		}
		dj = 0
		for j = 0; j < a.c; j++ {
			if j == exCol {
				continue
			}
			out.data[di*out.c+dj] = a.data[i*a.c+j]
			dj++
		}
		di++
	}

	return nil
}
