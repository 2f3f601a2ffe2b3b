// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels to matrix_test so white-box checks
// can live next to the black-box ones without widening the production API.
var (
	ExportedToHessenberg   = toHessenberg
	ExportedNullSpace      = nullSpace
	ExportedEigen2x2       = eigen2x2
	ExportedWilkinsonShift = wilkinsonShift
	ExportedCompleteBasis  = completeBasis
	ExportedSortTriples    = sortSingularTriples
)

// RawData returns m's backing buffer (nil once released).
func RawData(m *Dense) []float64 { return m.data }
