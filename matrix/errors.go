// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX) via
// matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (checked in this order by every kernel):
// nil/released -> shape -> numeric policy -> numerical failure
// (singular, not converged, not diagonalizable).

var (
	// ErrAllocation is returned when a matrix buffer cannot be allocated:
	// non-positive shape or a rows*cols product beyond the addressable length.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors return it joined with ErrAllocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil or already released matrix (receiver,
	// argument or data buffer) was used.
	ErrNilMatrix = errors.New("matrix: nil or released matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Fill).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrSingular is returned when LU meets a pivot at or below tolerance, or
	// when an inverse of a singular matrix is requested.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged indicates that an iterative kernel (Jacobi, shifted QR)
	// exceeded its iteration cap before reaching the tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrNotDiagonalizable indicates complex eigenvalues or an incomplete
	// eigenvector basis (defective matrix).
	ErrNotDiagonalizable = errors.New("matrix: matrix is not real-diagonalizable")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It matches ErrDimensionMismatch under errors.Is.
var ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
// It matches ErrDimensionMismatch under errors.Is.
var ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", ErrDimensionMismatch)
