// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*stride + j
//     (stride == cols). There is no row-pointer table: row access is computed.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make use-after-Release detectable: a released Dense has zero shape and a nil buffer,
//     and every kernel rejects it with ErrNilMatrix.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Fill: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxFill    = "Fill"
	ctxRelease = "Release"
	ctxNew     = "NewDense"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// maxElements bounds rows*cols so that the byte length of the buffer stays addressable.
const maxElements = math.MaxInt / 8

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are zero after Release.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Fill.
type Dense struct {
	r, c           int       // row and column counts (>0 while live)
	data           []float64 // contiguous row-major storage (len == r*c); nil after Release
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set/Fill when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor (the "init" primitive) with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits maxElements.
//   - Stage 2: allocate zero-filled buffer; resolve numeric policy from opts.
//
// Errors:
//   - ErrAllocation joined with ErrInvalidDimensions for a non-positive shape.
//   - ErrAllocation for a shape whose buffer length overflows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w: %w", ctxNew, rows, cols, ErrAllocation, ErrInvalidDimensions)
	}
	if rows > maxElements/cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrAllocation)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newLike allocates a zero matrix of the given shape sharing m's numeric policy.
// Shapes reaching here were validated by the caller, so the only failure is allocation.
func newLike(m *Dense, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	return res, nil
}

// Rows returns the row count (0 after Release).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 after Release).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsReleased reports whether m was released (or never allocated).
func (m *Dense) IsReleased() bool { return m == nil || m.data == nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// A released matrix has zero shape, so every index is out of range.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Cloning a released matrix yields another released matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m.IsReleased() {
		return &Dense{validateNaNInf: m.validateNaNInf}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Release drops the buffer and zeroes the shape.
// A second Release on the same matrix returns ErrNilMatrix.
func (m *Dense) Release() error {
	if m.IsReleased() {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrNilMatrix)
	}
	m.data = nil
	m.r, m.c = 0, 0

	return nil
}

// Fill copies rows*cols values from a flat row-major source into m.
// Implementation:
//   - Stage 1: validate m live, data non-nil, len(data) == r*c.
//   - Stage 2: enforce numeric policy over the whole source before writing.
//   - Stage 3: single copy.
//
// Behavior highlights:
//   - All-or-nothing: m is untouched on any error.
//
// Errors:
//   - ErrNilMatrix (m nil/released or data nil), ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Fill(m *Dense, data []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxFill, err)
	}
	if data == nil {
		return matrixErrorf(ctxFill, ErrNilMatrix)
	}
	if len(data) != m.r*m.c {
		return matrixErrorf(ctxFill, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return denseErrorf(ctxFill, idx/m.c, idx%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return nil
}

// Release frees m; see (*Dense).Release. A nil m yields ErrNilMatrix.
func Release(m *Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxRelease, ErrNilMatrix)
	}

	return m.Release()
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
