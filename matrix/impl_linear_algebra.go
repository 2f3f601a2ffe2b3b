// SPDX-License-Identifier: MIT
// Package matrix provides dense linear-algebra kernels over *Dense:
// element-wise arithmetic, products, transpose, submatrix extraction and the
// LU/QR/SVD/eigen decompositions. All kernels perform strict fail-fast
// validation before writing anything and return sentinel errors wrapped with
// an operation tag.
//
// Purpose:
//   - Define operation tags and shared numeric helpers used by the kernel files.
//
// Contract shared by every kernel:
//   - Binary/unary operations write into a caller-preallocated output and return an error.
//   - Allocating operations (constructors, decompositions) return a fresh result or an error.
//   - Inputs are never mutated unless the operation is documented as in-place (Scale).

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// Operation name constants for unified error wrapping.
const (
	opCopy      = "Copy"
	opScale     = "Scale"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opPow       = "Pow"
	opClassify  = "Classify"
	opTranspose = "Transpose"
	opSubmatrix = "Submatrix"
	opLU        = "LU"
	opSolve     = "Solve"
	opQR        = "QR"
	opEigenSym  = "EigenSym"
	opSVD       = "SVD"
	opEigen     = "Eigen"
	opDet       = "Det"
	opTrace     = "Trace"
	opInverse   = "Inverse"
	opDuplicate = "Duplicate"
	opIdentity  = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// maxAbs returns max |x| over a flat buffer; it is the scale used to make
// tolerances relative.
// Complexity: O(len(x)).
func maxAbs(x []float64) float64 {
	s := NormZero
	for _, v := range x {
		if a := math.Abs(v); a > s {
			s = a
		}
	}

	return s
}

// setIdentity overwrites a square buffer of order n with I_n.
func setIdentity(data []float64, n int) {
	clear(data)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}
}

// mulInto computes dst = a·b on raw row-major buffers (a: r×k, b: k×c).
// dst must not alias a or b. Accumulation is float64 throughout; i→k→j order
// keeps the inner loop contiguous.
// Complexity: O(r*k*c).
func mulInto(dst, a, b []float64, r, k, c int) {
	clear(dst[:r*c])
	var i, p, j, rowA, rowB, rowD int
	var av float64
	for i = 0; i < r; i++ {
		rowA = i * k
		rowD = i * c
		for p = 0; p < k; p++ {
			av = a[rowA+p]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = p * c
			for j = 0; j < c; j++ {
				dst[rowD+j] += av * b[rowB+j]
			}
		}
	}
}

// colNorm returns the Euclidean norm of column j of an r×c buffer.
func colNorm(data []float64, r, c, j int) float64 {
	s := NormZero
	for i := 0; i < r; i++ {
		s = math.Hypot(s, data[i*c+j])
	}

	return s
}
