// SPDX-License-Identifier: MIT
// Package matrix: general (non-symmetric) eigen-decomposition.
//
// Pipeline:
//   - Householder reduction to upper Hessenberg form (similarity, same spectrum).
//   - Wilkinson-shifted QR iteration on the active window, one QR factorization
//     per step, with deflation of negligible sub-diagonal entries.
//   - Eigenvectors from the null space of A − λI, one eigenvalue cluster at a time.
//   - X⁻¹ through LU.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// exceptionalEvery is the number of consecutive QR steps without deflation
// after which an exceptional shift is tried once.
const exceptionalEvery = 10

// exceptionalFactor scales the trailing sub-diagonal into the exceptional shift.
const exceptionalFactor = 0.75

// Eigen computes A = X·Λ·X⁻¹ for a square, real-diagonalizable A.
// Implementation:
//   - Stage 1: H = Hessenberg(A).
//   - Stage 2: shifted QR on H. Each step factors the active window
//     W − μI = Q·R with QR and replaces W by R·Q + μI; μ is the Wilkinson
//     shift (eigenvalue of the trailing 2×2 closer to its last diagonal entry).
//     A sub-diagonal entry at or below ε·(|h[k-1,k-1]| + |h[k,k]|) is zeroed and
//     splits the problem. Windows of size 1 yield an eigenvalue directly; an
//     irreducible 2×2 is solved in closed form and a negative discriminant
//     means a complex pair.
//   - Stage 3: sort eigenvalues descending; group values closer than √ε·‖A‖max
//     into clusters; for each cluster of multiplicity k take k null-space
//     vectors of A − λI (reduced row echelon form, partial pivoting).
//   - Stage 4: X⁻¹ = Inverse(X).
//
// Behavior highlights:
//   - Columns of X have unit norm and their largest-magnitude component is positive.
//   - A is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//   - ErrNotConverged when MaxIterations QR steps pass without a deflation.
//   - ErrNotDiagonalizable for complex eigenvalues or a defective matrix
//     (null space smaller than the multiplicity, or singular X).
//
// Complexity:
//   - Time O(n^3) per eigenvalue in the QR phase (dense QR on the window), Space O(n^2).
func Eigen(a *Dense, opts ...Option) (*EigenResult, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)
	n := a.r
	scale := maxAbs(a.data)

	// Stage 1.
	H := a.Clone()
	defer releaseAll(H)
	toHessenberg(H.data, n)

	// Stage 2.
	values, err := hessenbergValues(H, o, scale)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	sort.SliceStable(values, func(i, j int) bool { return values[i] > values[j] })

	// Stage 3.
	X, err := eigenvectors(a, values, o.eps, scale)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	// Stage 4.
	XInv, err := Inverse(X, opts...)
	if errors.Is(err, ErrSingular) {
		releaseAll(X)
		return nil, matrixErrorf(opEigen, fmt.Errorf("eigenvector basis is singular: %w", ErrNotDiagonalizable))
	}
	if err != nil {
		releaseAll(X)
		return nil, matrixErrorf(opEigen, err)
	}

	Lambda, err := newLike(a, n, n)
	if err != nil {
		releaseAll(X, XInv)
		return nil, matrixErrorf(opEigen, err)
	}
	for i, v := range values {
		Lambda.data[i*n+i] = v
	}

	return &EigenResult{X: X, Lambda: Lambda, XInv: XInv}, nil
}

// toHessenberg reduces the n×n buffer h in place to upper Hessenberg form
// by Householder similarity transforms P·H·P with P = I − τ·v·vᵀ.
// Complexity: O(n^3).
func toHessenberg(h []float64, n int) {
	v := make([]float64, n)
	var (
		i, j, k          int
		norm, alpha, tau float64
		beta, sum        float64
	)
	for k = 0; k < n-2; k++ {
		norm = NormZero
		for i = k + 1; i < n; i++ {
			norm = math.Hypot(norm, h[i*n+k])
		}
		if norm == NormZero {
			continue
		}
		alpha = -math.Copysign(norm, h[(k+1)*n+k])
		clear(v)
		for i = k + 1; i < n; i++ {
			v[i] = h[i*n+k]
		}
		v[k+1] -= alpha
		beta = NormZero
		for i = k + 1; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// H ← P·H (rows k+1..n-1).
		for j = k; j < n; j++ {
			sum = ZeroSum
			for i = k + 1; i < n; i++ {
				sum += v[i] * h[i*n+j]
			}
			sum *= tau
			for i = k + 1; i < n; i++ {
				h[i*n+j] -= sum * v[i]
			}
		}
		// H ← H·P (columns k+1..n-1).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for j = k + 1; j < n; j++ {
				sum += h[i*n+j] * v[j]
			}
			sum *= tau
			for j = k + 1; j < n; j++ {
				h[i*n+j] -= sum * v[j]
			}
		}
		h[(k+1)*n+k] = alpha
		for i = k + 2; i < n; i++ {
			h[i*n+k] = 0
		}
	}
}

// hessenbergValues runs shifted QR on the Hessenberg matrix H (destroyed)
// and returns its eigenvalues in deflation order.
func hessenbergValues(H *Dense, o Options, scale float64) ([]float64, error) {
	n := H.r
	h := H.data
	values := make([]float64, n)
	discTol := o.eps * scale * scale

	var (
		lo, hi, k, steps int
		small, mu, sub   float64
		a, b, c, d       float64
		l1, l2           float64
		err              error
	)
	hi = n - 1
	for hi >= 0 {
		// Locate the top of the active window: the lowest negligible sub-diagonal.
		for lo = hi; lo > 0; lo-- {
			sub = math.Abs(h[lo*n+lo-1])
			small = o.eps * (math.Abs(h[(lo-1)*n+lo-1]) + math.Abs(h[lo*n+lo]))
			if small == 0 {
				small = o.eps * scale
			}
			if sub <= small {
				h[lo*n+lo-1] = 0
				break
			}
		}

		switch lo {
		case hi:
			values[hi] = h[hi*n+hi]
			hi--
			steps = 0
			continue
		case hi - 1:
			a, b = h[lo*n+lo], h[lo*n+hi]
			c, d = h[hi*n+lo], h[hi*n+hi]
			l1, l2, err = eigen2x2(a, b, c, d, discTol)
			if err != nil {
				return nil, err
			}
			values[lo], values[hi] = l1, l2
			hi -= 2
			steps = 0
			continue
		}

		if steps >= o.maxIter {
			return nil, fmt.Errorf("%d QR steps without deflation at row %d: %w", steps, hi, ErrNotConverged)
		}
		steps++

		// Shift from the trailing 2×2 of the window.
		a, b = h[(hi-1)*n+hi-1], h[(hi-1)*n+hi]
		c, d = h[hi*n+hi-1], h[hi*n+hi]
		if steps%exceptionalEvery == 0 {
			mu = d + exceptionalFactor*math.Abs(c)
		} else {
			mu = wilkinsonShift(a, b, c, d)
		}
		if err = qrStep(H, lo, hi, mu); err != nil {
			return nil, err
		}
		// Restore exact Hessenberg structure inside the window.
		for k = lo + 2; k <= hi; k++ {
			for j := lo; j < k-1; j++ {
				h[k*n+j] = 0
			}
		}
	}

	return values, nil
}

// eigen2x2 returns the eigenvalues of [[a b] [c d]], larger first.
// Discriminants in [-discTol, 0) are treated as a double root.
func eigen2x2(a, b, c, d, discTol float64) (float64, float64, error) {
	p := 0.5 * (a - d)
	disc := p*p + b*c
	if disc < -discTol {
		return 0, 0, fmt.Errorf("complex pair %g ± %gi: %w", 0.5*(a+d), math.Sqrt(-disc), ErrNotDiagonalizable)
	}
	s := math.Sqrt(math.Max(disc, 0))
	mid := 0.5 * (a + d)

	return mid + s, mid - s, nil
}

// wilkinsonShift returns the eigenvalue of [[a b] [c d]] closer to d, or d
// itself when that pair is complex.
func wilkinsonShift(a, b, c, d float64) float64 {
	p := 0.5 * (a - d)
	disc := p*p + b*c
	if disc < 0 {
		return d
	}
	den := p + math.Copysign(math.Sqrt(disc), p)
	if den == 0 {
		return d
	}

	return d - b*c/den
}

// qrStep replaces the window H[lo..hi, lo..hi] by R·Q + μI where
// W − μI = Q·R. Entries outside the window are left as they are: only the
// spectrum of the window is needed.
func qrStep(H *Dense, lo, hi int, mu float64) error {
	n := H.r
	w := hi - lo + 1
	W, err := newLike(H, w, w)
	if err != nil {
		return err
	}
	defer releaseAll(W)

	var i, j int
	for i = 0; i < w; i++ {
		copy(W.data[i*w:(i+1)*w], H.data[(lo+i)*n+lo:(lo+i)*n+hi+1])
		W.data[i*w+i] -= mu
	}
	f, err := QR(W)
	if err != nil {
		return err
	}
	defer f.Release()
	if err = Mul(f.R, f.Q, W); err != nil {
		return err
	}
	for i = 0; i < w; i++ {
		for j = 0; j < w; j++ {
			H.data[(lo+i)*n+lo+j] = W.data[i*w+j]
		}
		H.data[(lo+i)*n+lo+i] += mu
	}

	return nil
}

// eigenvectors builds X column by column from the null spaces of A − λI,
// where values is sorted descending. Both the clustering and the null-space
// tolerance are relative to scale = max|A|.
func eigenvectors(a *Dense, values []float64, eps, scale float64) (*Dense, error) {
	n := a.r
	X, err := newLike(a, n, n)
	if err != nil {
		return nil, err
	}
	tol := vectorTolerance(eps, scale)
	shifted := make([]float64, n*n)

	var start, end, mult, i, j, col int
	var lambda float64
	for start = 0; start < n; start = end {
		end = start + 1
		for end < n && values[start]-values[end] <= tol {
			end++
		}
		mult = end - start
		lambda = ZeroSum
		for i = start; i < end; i++ {
			lambda += values[i]
		}
		lambda /= float64(mult)

		copy(shifted, a.data)
		for i = 0; i < n; i++ {
			shifted[i*n+i] -= lambda
		}
		basis := nullSpace(shifted, n, tol)
		if len(basis) < mult {
			releaseAll(X)
			return nil, fmt.Errorf("eigenvalue %g: multiplicity %d, %d independent eigenvectors: %w",
				lambda, mult, len(basis), ErrNotDiagonalizable)
		}
		for j = 0; j < mult; j++ {
			col = start + j
			for i = 0; i < n; i++ {
				X.data[i*n+col] = basis[j][i]
			}
		}
	}

	return X, nil
}

// vectorTolerance is √eps·scale, or eps for the zero matrix.
func vectorTolerance(eps, scale float64) float64 {
	if scale == 0 {
		return eps
	}

	return math.Sqrt(eps) * scale
}

// nullSpace returns a basis of {x : B·x = 0} for the n×n buffer b (destroyed),
// using reduced row echelon form with partial pivoting; |pivot| ≤ tol makes
// a column free. Each vector is unit-norm with its largest component positive.
func nullSpace(b []float64, n int, tol float64) [][]float64 {
	pivotOf := make([]int, 0, n) // pivot column of each pivot row
	isPivot := make([]bool, n)

	var row, col, i, j, p int
	var best, v, f float64
	for col = 0; col < n && row < n; col++ {
		p, best = row, math.Abs(b[row*n+col])
		for i = row + 1; i < n; i++ {
			if v = math.Abs(b[i*n+col]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			continue
		}
		if p != row {
			for j = 0; j < n; j++ {
				b[row*n+j], b[p*n+j] = b[p*n+j], b[row*n+j]
			}
		}
		f = b[row*n+col]
		for j = col; j < n; j++ {
			b[row*n+j] /= f
		}
		for i = 0; i < n; i++ {
			if i == row {
				continue
			}
			if f = b[i*n+col]; f != 0 {
				for j = col; j < n; j++ {
					b[i*n+j] -= f * b[row*n+j]
				}
			}
		}
		pivotOf = append(pivotOf, col)
		isPivot[col] = true
		row++
	}

	basis := make([][]float64, 0, n-len(pivotOf))
	for free := 0; free < n; free++ {
		if isPivot[free] {
			continue
		}
		x := make([]float64, n)
		x[free] = 1
		for r, pc := range pivotOf {
			x[pc] = -b[r*n+free]
		}
		normalizeVector(x)
		basis = append(basis, x)
	}

	return basis
}

// normalizeVector scales x to unit norm with its largest-magnitude component positive.
func normalizeVector(x []float64) {
	norm := NormZero
	big, at := NormZero, 0
	for i, v := range x {
		norm = math.Hypot(norm, v)
		if math.Abs(v) > big {
			big, at = math.Abs(v), i
		}
	}
	if norm == NormZero {
		return
	}
	if x[at] < 0 {
		norm = -norm
	}
	for i := range x {
		x[i] /= norm
	}
}
