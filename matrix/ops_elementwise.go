// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels (Copy, Scale, Add, Sub).
//
// Determinism:
//   - Single flat 0..n-1 loop over the row-major buffer.
//   - Each output cell depends only on the same cell of the inputs, so an
//     output aliasing an input is well defined.

package matrix

// Copy writes src into dst. Shapes must be ShapeEqual.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func Copy(src, dst *Dense) error {
	if err := ValidateNotNilAll(src, dst); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err := ValidateSameShape(src, dst); err != nil {
		return matrixErrorf(opCopy, err)
	}
	copy(dst.data, src.data)

	return nil
}

// Duplicate returns a deep copy of m with identical shape, contents and policy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func Duplicate(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDuplicate, err)
	}

	return m.Clone(), nil
}

// Scale multiplies every entry of m by k in place.
// k = 0 yields an explicit zero matrix; NaN/Inf in k propagate.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func Scale(m *Dense, k float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		m.data[idx] *= k
	}

	return nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub to keep validation and the flat loop in one place.
func addSub(a, b, out *Dense, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(a, b, out); err != nil {
		return matrixErrorf(opTag, err)
	}
	n := len(out.data)
	for idx := 0; idx < n; idx++ {
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return nil
}

// Add computes out = a + b element-wise.
// All three shapes must be equal; out may alias a or b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func Add(a, b, out *Dense) error { return addSub(a, b, out, +1, opAdd) }

// Sub computes out = a - b element-wise.
// All three shapes must be equal; out may alias a or b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func Sub(a, b, out *Dense) error { return addSub(a, b, out, -1, opSub) }
