// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common construction tasks.
//   - Avoid logic duplication: each facade delegates to NewDense, Fill or a kernel.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	setIdentity(I.data, n)

	return I, nil
}

// NewDenseFrom allocates a rows×cols matrix and fills it from a flat
// row-major slice. The slice is copied; later changes to data do not affect
// the matrix.
//
// Errors: those of NewDense and Fill.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = Fill(m, data); err != nil {
		return nil, err
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape and numeric policy as m.
// Handy to preallocate outputs for Add/Sub/Copy.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newLike(m, m.r, m.c)
}

// IdentityLike returns I with the order of the square matrix m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	I, err := newLike(m, m.r, m.r)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	setIdentity(I.data, m.r)

	return I, nil
}

// TransposeOf allocates aᵀ. It is Transpose with a fresh output.
func TransposeOf(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := newLike(a, a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = Transpose(a, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Product allocates a × b. It is Mul with a fresh output.
func Product(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNilAll(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := newLike(a, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = Mul(a, b, out); err != nil {
		return nil, err
	}

	return out, nil
}
