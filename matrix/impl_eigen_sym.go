// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigen-decomposition by Jacobi rotations.

package matrix

import (
	"fmt"
	"math"
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: validate live, square and symmetric within ε·max|A|.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| (upper triangle,
//     i→j scan) and apply the plane rotation that zeroes it, accumulating the
//     rotations into Q.
//   - Stage 3: stop when max|A[p,q]| ≤ ε·max|A|; eigenvalues are diag(A).
//
// Behavior highlights:
//   - Eigenvalues are returned in diagonal order (not sorted); column i of
//     the returned matrix is the unit eigenvector for values[i].
//   - The rotation cap is MaxIterations sweeps of n(n-1)/2 rotations.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotConverged.
//
// Determinism:
//   - Fixed pivot scan and update order produce stable results.
//
// Complexity:
//   - Time O(sweeps · n^4) worst case for the largest-pivot strategy, Space O(n^2).
func EigenSym(m *Dense, opts ...Option) ([]float64, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	o := gatherOptions(opts...)
	scale := maxAbs(m.data)
	tol := o.eps * scale
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	n := m.r
	A := m.Clone()
	Q, err := newLike(m, n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	setIdentity(Q.data, n)

	a, q := A.data, Q.data
	maxRot := o.maxIter * max(1, n*(n-1)/2)
	var (
		rot                int
		i, j, p, q0        int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for {
		// J.1: pivot (p,q) maximizing |A[p,q]|.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(a[i*n+j]); off > maxOff {
					maxOff, p, q0 = off, i, j
				}
			}
		}
		// J.2: convergence.
		if maxOff <= tol {
			break
		}
		if rot >= maxRot {
			return nil, nil, matrixErrorf(opEigenSym, fmt.Errorf("%d rotations, off-diagonal %g > %g: %w", rot, maxOff, tol, ErrNotConverged))
		}
		rot++

		// J.3: rotation parameters.
		app, aqq, apq = a[p*n+p], a[q0*n+q0], a[p*n+q0]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: A ← JᵀAJ, kept symmetric explicitly.
		for i = 0; i < n; i++ {
			if i == p || i == q0 {
				continue
			}
			aip, aiq = a[i*n+p], a[i*n+q0]
			a[i*n+p] = c*aip - s*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q0] = s*aip + c*aiq
			a[q0*n+i] = a[i*n+q0]
		}
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q0*n+q0] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+q0], a[q0*n+p] = 0, 0

		// J.5: Q ← Q·J.
		for i = 0; i < n; i++ {
			qip, qiq = q[i*n+p], q[i*n+q0]
			q[i*n+p] = c*qip - s*qiq
			q[i*n+q0] = s*qip + c*qiq
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a[i*n+i]
	}

	return values, Q, nil
}
