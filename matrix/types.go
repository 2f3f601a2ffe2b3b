// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels.
// This file contains ONLY the read-only Matrix interface, the ShapeRelation
// enumeration and the decomposition result containers. Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view of a two-dimensional float64 grid.
// *Dense implements it; presentation code (printer) consumes it.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// ShapeRelation classifies a pair of matrices by their dimensions.
type ShapeRelation int

const (
	// ShapeIncompatible means neither equal nor transposed shapes.
	ShapeIncompatible ShapeRelation = iota
	// ShapeEqual means a.Rows()==b.Rows() and a.Cols()==b.Cols().
	ShapeEqual
	// ShapeTransposed means a is r×c and b is c×r (and r != c).
	ShapeTransposed
)

// String implements fmt.Stringer.
func (s ShapeRelation) String() string {
	switch s {
	case ShapeEqual:
		return "Equal"
	case ShapeTransposed:
		return "Transposed"
	default:
		return "Incompatible"
	}
}

// LUResult holds a partial-pivoting factorization P·A = L·U.
//   - L is unit lower-triangular, U is upper-triangular (both n×n).
//   - Perm[i] is the row of A that was moved to row i; P[i][Perm[i]] = 1.
type LUResult struct {
	L, U  *Dense
	Perm  []int
	swaps int // number of row exchanges performed; parity gives Sign
}

// Sign returns +1 for an even row permutation and -1 for an odd one.
func (r *LUResult) Sign() float64 {
	if r.swaps%2 == 0 {
		return 1
	}

	return -1
}

// P materializes the permutation matrix implied by Perm.
// Complexity: O(n^2).
func (r *LUResult) P() (*Dense, error) {
	n := len(r.Perm)
	p, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i, src := range r.Perm {
		p.data[i*n+src] = 1.0
	}

	return p, nil
}

// Release frees L and U. The result must not be used afterwards.
func (r *LUResult) Release() {
	releaseAll(r.L, r.U)
	r.Perm = nil
}

// QRResult holds A = Q·R with Q (m×m) orthogonal and R (m×n) upper-triangular.
type QRResult struct {
	Q, R *Dense
}

// Release frees Q and R.
func (r *QRResult) Release() { releaseAll(r.Q, r.R) }

// SVDResult holds A = U·Σ·Vᵀ.
//   - U (m×m) and V (n×n) are orthogonal.
//   - Sigma (m×n) is diagonal with non-negative, non-increasing entries.
type SVDResult struct {
	U, Sigma, V *Dense
}

// Values returns the min(m,n) singular values in non-increasing order.
func (r *SVDResult) Values() []float64 {
	k := min(r.Sigma.r, r.Sigma.c)
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = r.Sigma.data[i*r.Sigma.c+i]
	}

	return out
}

// Release frees U, Sigma and V.
func (r *SVDResult) Release() { releaseAll(r.U, r.Sigma, r.V) }

// EigenResult holds A = X·Λ·X⁻¹ for a real-diagonalizable A.
//   - X columns are unit-norm eigenvectors, Lambda is diagonal.
//   - Eigenvalues are ordered non-increasing along the diagonal.
type EigenResult struct {
	X, Lambda, XInv *Dense
}

// Values returns the diagonal of Lambda.
func (r *EigenResult) Values() []float64 {
	n := r.Lambda.r
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.Lambda.data[i*n+i]
	}

	return out
}

// Release frees X, Lambda and XInv.
func (r *EigenResult) Release() { releaseAll(r.X, r.Lambda, r.XInv) }

// releaseAll releases every live matrix; nil or already released entries are skipped.
func releaseAll(ms ...*Dense) {
	for _, m := range ms {
		if m != nil && !m.IsReleased() {
			_ = m.Release()
		}
	}
}
