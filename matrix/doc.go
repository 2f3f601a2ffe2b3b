// Package matrix offers dense real-valued matrices and the linear-algebra
// kernels built on them.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with safe accessors (At, Set, Row),
//     all-or-nothing Fill, deep Clone and explicit Release.
//   - Shape primitives: Classify, Transpose, Submatrix.
//   - Element-wise arithmetic (Copy, Scale, Add, Sub) and products (Mul, Pow).
//   - Decompositions: LU with partial pivoting, Householder QR, Jacobi
//     EigenSym, SVD and the general real Eigen decomposition.
//   - Derived quantities: Det, Trace, Inverse and LUResult.Solve.
//
// Every operation validates its operands before writing anything, so a
// failing call leaves its output untouched. Errors are sentinels (ErrSingular,
// ErrNotConverged, ...) wrapped with the name of the operation; match them
// with errors.Is.
//
// Numeric policy (tolerance, iteration caps, NaN/Inf rejection) is set with
// functional options:
//
//	f, err := matrix.LU(a, matrix.WithEpsilon(1e-10))
//
// Matrices are intended for modest dimensions: all kernels are dense and
// single-threaded. See the examples in this package for usage patterns.
package matrix
