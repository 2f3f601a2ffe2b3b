// SPDX-License-Identifier: MIT
// Package matrix: singular value decomposition built on the symmetric eigen kernel.

package matrix

import (
	"math"
	"slices"
	"sort"
)

// SVD computes A = U·Σ·Vᵀ for an m×n matrix.
// Implementation:
//   - Stage 1: form the symmetric Gram matrix AᵀA (n×n, eigenvalues ≥ 0).
//   - Stage 2: EigenSym(AᵀA); order eigenpairs by eigenvalue, descending,
//     ties kept in original column order (stable sort). σ_i = √max(λ_i, 0),
//     V_i = eigenvector i.
//   - Stage 3: σ_i = ‖A·V_i‖ and U_i = A·V_i / σ_i, re-orthogonalized against
//     the previous columns (modified Gram-Schmidt). σ_i is zero when ‖A·V_i‖ is
//     at or below ε·σ_max, or when orthogonalization leaves no new direction.
//     The triples are then re-sorted so that σ stays non-increasing.
//   - Stage 4: the remaining U columns (zero σ, or m > n) are completed from
//     the standard basis: each time, the basis vector with the largest residual
//     after projection onto the chosen columns is orthonormalized and appended.
//
// Behavior highlights:
//   - σ_i is taken from A·V_i rather than √λ_i, so small singular values keep
//     their accuracy even though λ_i carries the squared condition number.
//   - A is never mutated.
//
// Errors:
//   - ErrNilMatrix; ErrNotConverged from the eigen step.
//
// Complexity:
//   - Time O(m·n^2 + Jacobi(n) + m^3), Space O(m^2 + n^2).
func SVD(a *Dense, opts ...Option) (*SVDResult, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)
	m, n := a.r, a.c

	// Stage 1: AᵀA. Both triangles use the same products, so the result is exactly symmetric.
	gram, err := newLike(a, n, n)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < m; k++ {
				sum += a.data[k*n+i] * a.data[k*n+j]
			}
			gram.data[i*n+j] = sum
			gram.data[j*n+i] = sum
		}
	}

	// Stage 2: eigenpairs of AᵀA, sorted descending.
	vals, W, err := EigenSym(gram, opts...)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	V, err := newLike(a, n, n)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	sigma := make([]float64, n)
	for j = 0; j < n; j++ {
		src := order[j]
		sigma[j] = math.Sqrt(math.Max(vals[src], 0))
		for i = 0; i < n; i++ {
			V.data[i*n+j] = W.data[i*n+src]
		}
	}

	// Stage 3: σ_i = ‖A·V_i‖, U_i = A·V_i / σ_i.
	U, err := newLike(a, m, m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	kmin := min(m, n)
	rankTol := o.eps * sigma[0]
	filled := make([]bool, m)
	u := make([]float64, m)
	var norm float64
	for j = 0; j < kmin; j++ {
		norm = NormZero
		for i = 0; i < m; i++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += a.data[i*n+k] * V.data[k*n+j]
			}
			u[i] = sum
			norm = math.Hypot(norm, sum)
		}
		if norm <= rankTol {
			sigma[j] = 0
			continue
		}
		sigma[j] = norm
		if orthonormalizeAgainst(u, U.data, m, filled) {
			setColumn(U.data, m, j, u)
			filled[j] = true
		} else {
			sigma[j] = 0 // direction lost to rounding; treat as rank-deficient
		}
	}
	sortSingularTriples(sigma[:kmin], U.data, m, V.data, n, filled)

	// Stage 4: complete U to an orthonormal basis.
	completeBasis(U.data, m, filled)

	S, err := newLike(a, m, n)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	for j = 0; j < kmin; j++ {
		S.data[j*n+j] = sigma[j]
	}

	return &SVDResult{U: U, Sigma: S, V: V}, nil
}

// orthonormalizeAgainst removes from x its projections onto every filled
// column of the m×m buffer q (two passes of modified Gram-Schmidt) and
// normalizes it. It reports false when the residual is too small to define
// a direction.
func orthonormalizeAgainst(x, q []float64, m int, filled []bool) bool {
	var i, col, pass int
	var dot float64
	norm0 := NormZero
	for i = 0; i < m; i++ {
		norm0 = math.Hypot(norm0, x[i])
	}
	if norm0 == NormZero {
		return false
	}
	for pass = 0; pass < 2; pass++ {
		for col = 0; col < m; col++ {
			if !filled[col] {
				continue
			}
			dot = ZeroSum
			for i = 0; i < m; i++ {
				dot += q[i*m+col] * x[i]
			}
			for i = 0; i < m; i++ {
				x[i] -= dot * q[i*m+col]
			}
		}
	}
	norm := NormZero
	for i = 0; i < m; i++ {
		norm = math.Hypot(norm, x[i])
	}
	if norm <= residualFloor*norm0 {
		return false
	}
	for i = 0; i < m; i++ {
		x[i] /= norm
	}

	return true
}

// residualFloor is the fraction of a vector's norm that must survive
// orthogonalization for it to count as a new direction.
const residualFloor = 1e-8

// completeBasis fills every unfilled column of the m×m buffer q with an
// orthonormal vector, choosing each time the standard basis vector whose
// residual against the filled columns is largest.
func completeBasis(q []float64, m int, filled []bool) {
	x := make([]float64, m)
	best := make([]float64, m)
	var col, cand, i int
	var bestNorm, norm float64
	for col = 0; col < m; col++ {
		if filled[col] {
			continue
		}
		bestNorm = -1
		for cand = 0; cand < m; cand++ {
			clear(x)
			x[cand] = 1
			if !orthonormalizeAgainst(x, q, m, filled) {
				continue
			}
			// Residual norm before normalization equals the projection of e_cand
			// onto the complement: x[cand] after normalization is that norm.
			norm = x[cand]
			if norm > bestNorm {
				bestNorm = norm
				copy(best, x)
			}
		}
		for i = 0; i < m; i++ {
			q[i*m+col] = best[i]
		}
		filled[col] = true
	}
}

// sortSingularTriples reorders the leading len(sigma) columns of the m×m
// buffer u (with their filled flags) and of the n×n buffer v so that sigma is
// non-increasing. Ties keep their order.
func sortSingularTriples(sigma, u []float64, m int, v []float64, n int, filled []bool) {
	perm := make([]int, len(sigma))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool { return sigma[perm[x]] > sigma[perm[y]] })
	if sort.IntsAreSorted(perm) {
		return
	}

	permuteColumns(u, m, m, perm)
	permuteColumns(v, n, n, perm)
	oldSigma := slices.Clone(sigma)
	oldFilled := slices.Clone(filled[:len(perm)])
	for j, src := range perm {
		sigma[j] = oldSigma[src]
		filled[j] = oldFilled[src]
	}
}

// permuteColumns sets column j of the rows×cols buffer q to its former column
// perm[j], for j < len(perm).
func permuteColumns(q []float64, rows, cols int, perm []int) {
	tmp := make([]float64, len(perm))
	var i int
	for i = 0; i < rows; i++ {
		for j, src := range perm {
			tmp[j] = q[i*cols+src]
		}
		copy(q[i*cols:], tmp)
	}
}

// setColumn writes x into column j of the m×m buffer q.
func setColumn(q []float64, m, j int, x []float64) {
	for i := 0; i < m; i++ {
		q[i*m+j] = x[i]
	}
}
