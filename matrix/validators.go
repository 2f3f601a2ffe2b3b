// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Every kernel runs its validators before touching any output, which is
//    what makes failed calls leave outputs untouched.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil and not released.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m.IsReleased() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks a.Rows()==b.Rows() and a.Cols()==b.Cols().
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape checks that m is exactly rows×cols. Assumes m non-nil.
func ValidateShape(m *Dense, rows, cols int) error {
	if m.r != rows || m.c != cols {
		return validatorErrorf("ValidateShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows()==Cols(). Assumes m non-nil.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil runs ValidateNotNil then ValidateSquare.
func ValidateSquareNonNil(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateNotNilAll runs ValidateNotNil over every operand in order.
func ValidateNotNilAll(ms ...*Dense) error {
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
	}

	return nil
}

// ValidateBinarySameShape checks the (a, b, out) triple of Add/Sub:
// all live and ShapeEqual pairwise.
func ValidateBinarySameShape(a, b, out *Dense) error {
	if err := ValidateNotNilAll(a, b, out); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(b, out); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols()==b.Rows() and out is a.Rows()×b.Cols().
// The ShapeTransposed classification plays no role here.
func ValidateMulCompatible(a, b, out *Dense) error {
	if err := ValidateNotNilAll(a, b, out); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	if err := ValidateShape(out, a.r, b.c); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j]-A[j,i]| ≤ tol on the upper triangle.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
