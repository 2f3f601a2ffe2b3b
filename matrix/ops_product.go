// SPDX-License-Identifier: MIT
// Package matrix: product kernels (Mul, Pow).

package matrix

// Mul computes out = a × b.
// Implementation:
//   - Stage 1: validate a.Cols()==b.Rows() and out shaped a.Rows()×b.Cols().
//   - Stage 2: i→k→j accumulation in float64 (partial sums are never truncated).
//     When out aliases a or b, the product is staged in a scratch buffer and
//     copied at the end.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(1) (O(r*c) scratch when aliased).
func Mul(a, b, out *Dense) error {
	if err := ValidateMulCompatible(a, b, out); err != nil {
		return matrixErrorf(opMul, err)
	}
	if out == a || out == b {
		scratch := make([]float64, len(out.data))
		mulInto(scratch, a.data, b.data, a.r, a.c, b.c)
		copy(out.data, scratch)

		return nil
	}
	mulInto(out.data, a.data, b.data, a.r, a.c, b.c)

	return nil
}

// Pow computes out = m^exp for a square m.
// Implementation:
//   - exp == 0: out = I regardless of m's contents.
//   - exp > 0 : binary exponentiation, O(log exp) multiplications.
//   - exp < 0 : out = (m⁻¹)^|exp| using Inverse (LU with partial pivoting).
//
// Behavior highlights:
//   - out may alias m; m is copied before any write.
//   - opts are forwarded to Inverse for negative exponents.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square m or mis-shaped out),
//     ErrSingular (negative exponent of a singular matrix).
//
// Complexity:
//   - Time O(n^3 log|exp|), Space O(n^2).
func Pow(m *Dense, exp int, out *Dense, opts ...Option) error {
	if err := ValidateNotNilAll(m, out); err != nil {
		return matrixErrorf(opPow, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opPow, err)
	}
	if err := ValidateSameShape(m, out); err != nil {
		return matrixErrorf(opPow, err)
	}

	n := m.r
	if exp == 0 {
		setIdentity(out.data, n)
		return nil
	}

	var e uint
	base := make([]float64, n*n)
	if exp > 0 {
		e = uint(exp)
		copy(base, m.data)
	} else {
		e = uint(-(exp + 1)) + 1 // |exp| without overflowing on math.MinInt
		inv, err := Inverse(m, opts...)
		if err != nil {
			return matrixErrorf(opPow, err)
		}
		copy(base, inv.data)
	}

	acc := make([]float64, n*n)
	tmp := make([]float64, n*n)
	setIdentity(acc, n)
	for e > 0 {
		if e&1 == 1 {
			mulInto(tmp, acc, base, n, n, n)
			acc, tmp = tmp, acc
		}
		e >>= 1
		if e > 0 {
			mulInto(tmp, base, base, n, n, n)
			base, tmp = tmp, base
		}
	}
	copy(out.data, acc)

	return nil
}
