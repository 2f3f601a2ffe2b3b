// SPDX-License-Identifier: MIT

// Package printer renders matrices as bracketed, fixed-precision text:
//
//	[
//		[ 1.00 2.00 ]
//		[ 3.00 4.00 ]
//	]
//
// Each value is written with %.*f followed by a single space.
package printer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/densela/matrix"
)

// ErrNegativePrecision is returned for a precision below zero.
var ErrNegativePrecision = errors.New("printer: precision must be >= 0")

const (
	_open     = "[\n"
	_close    = "]\n"
	_rowOpen  = "\t[ "
	_rowClose = "]\n"
)

// Fprint writes m to w with precision digits after the decimal point.
// The whole rendering is built before the first write, so nothing reaches w
// when validation or an element read fails.
//
// Errors:
//   - ErrNegativePrecision.
//   - matrix.ErrNilMatrix for a nil or released *matrix.Dense (or nil m).
//   - Any error from m.At.
//   - Any write error from w.
func Fprint(w io.Writer, m matrix.Matrix, precision int) error {
	if precision < 0 {
		return fmt.Errorf("Fprint(%d): %w", precision, ErrNegativePrecision)
	}
	if isAbsent(m) {
		return fmt.Errorf("Fprint: %w", matrix.ErrNilMatrix)
	}

	var buf bytes.Buffer
	rows, cols := m.Rows(), m.Cols()
	buf.WriteString(_open)
	var i, j int
	for i = 0; i < rows; i++ {
		buf.WriteString(_rowOpen)
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("Fprint: %w", err)
			}
			fmt.Fprintf(&buf, "%.*f ", precision, v)
		}
		buf.WriteString(_rowClose)
	}
	buf.WriteString(_close)

	_, err := buf.WriteTo(w)

	return err
}

// Sprint returns the rendering of m as a string.
func Sprint(m matrix.Matrix, precision int) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, m, precision); err != nil {
		return "", err
	}

	return b.String(), nil
}

// isAbsent catches a nil interface and a nil or released *Dense hidden in it.
func isAbsent(m matrix.Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.IsReleased()
	}

	return false
}
