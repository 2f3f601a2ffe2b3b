// Package densela is a dense real-matrix algebra toolkit.
//
// What is inside:
//
//	matrix/          Dense storage, arithmetic, products and the LU, QR,
//	                 SVD and eigen decompositions
//	printer/         bracketed fixed-precision rendering of a matrix
//	cmd/matrixdemo/  demonstration driver with structured logging
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 3, 6, 3})
//	f, _ := matrix.LU(a)
//	defer f.Release()
//	det, _ := matrix.Det(a) // -6
//	_ = printer.Fprint(os.Stdout, f.U, 3)
//
// The library is pure Go and has no run-time dependencies beyond the
// standard library; tests use testify, go-cmp and gonum as a reference.
package densela
