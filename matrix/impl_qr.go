// SPDX-License-Identifier: MIT
// Package matrix: QR factorization via Householder reflections.

package matrix

import "math"

// QR computes A = Q·R for an m×n matrix with m ≥ n.
// Implementation:
//   - Stage 1: validate m live and rows ≥ cols; R = copy of A (m×n); Q = I_m.
//   - Stage 2: for k = 0..min(n, m-1)-1 build the reflector H_k = I − τ·v·vᵀ
//     that zeroes R[k+1:, k]; apply it to R from the left and accumulate
//     Q ← Q·H_k, so Q is the product of reflectors and stays orthogonal.
//   - Stage 3: canonicalize signs so diag(R) ≥ 0 (negate row k of R and
//     column k of Q together; the product is unchanged).
//
// Behavior highlights:
//   - Householder is preferred over Gram-Schmidt: orthogonality of Q does
//     not degrade with the condition of A.
//   - Zero columns are skipped (their reflector would be undefined).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols).
//
// Determinism:
//   - Fixed k→j→i visitation order.
//
// Complexity:
//   - Time O(m^2·n), Space O(m^2 + m·n).
func QR(a *Dense) (*QRResult, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	if a.r < a.c {
		return nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}
	m, n := a.r, a.c

	R := a.Clone()
	Q, err := newLike(a, m, m)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	setIdentity(Q.data, m)

	v := make([]float64, m)
	var (
		i, j, k           int
		norm, alpha, beta float64
		tau, sum          float64
		r, q              = R.data, Q.data
	)
	steps := min(n, m-1)
	for k = 0; k < steps; k++ {
		// Norm of the sub-column R[k:m, k].
		norm = NormZero
		for i = k; i < m; i++ {
			norm = math.Hypot(norm, r[i*n+k])
		}
		if norm == NormZero {
			continue // zero column: nothing to annihilate
		}

		// v = x − α·e_k with α = −sign(x_k)·‖x‖ (avoids cancellation).
		alpha = -math.Copysign(norm, r[k*n+k])
		clear(v)
		for i = k; i < m; i++ {
			v[i] = r[i*n+k]
		}
		v[k] -= alpha
		beta = NormZero
		for i = k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// R ← H_k·R on columns k..n-1.
		for j = k; j < n; j++ {
			sum = ZeroSum
			for i = k; i < m; i++ {
				sum += v[i] * r[i*n+j]
			}
			if sum == 0 {
				continue
			}
			sum *= tau
			for i = k; i < m; i++ {
				r[i*n+j] -= sum * v[i]
			}
		}
		// Exact zeros below the diagonal of column k.
		r[k*n+k] = alpha
		for i = k + 1; i < m; i++ {
			r[i*n+k] = 0
		}

		// Q ← Q·H_k on columns k..m-1.
		for i = 0; i < m; i++ {
			sum = ZeroSum
			for j = k; j < m; j++ {
				sum += q[i*m+j] * v[j]
			}
			if sum == 0 {
				continue
			}
			sum *= tau
			for j = k; j < m; j++ {
				q[i*m+j] -= sum * v[j]
			}
		}
	}

	// diag(R) ≥ 0.
	for k = 0; k < n; k++ {
		if r[k*n+k] >= 0 {
			continue
		}
		for j = k; j < n; j++ {
			r[k*n+j] = -r[k*n+j]
		}
		for i = 0; i < m; i++ {
			q[i*m+k] = -q[i*m+k]
		}
	}

	return &QRResult{Q: Q, R: R}, nil
}
