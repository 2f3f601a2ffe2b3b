// SPDX-License-Identifier: MIT

// Command matrixdemo walks through the densela matrix API: it builds sample
// matrices, multiplies them, runs every decomposition on a seeded random
// matrix and prints the results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/printer"
)

var sampleData = []float64{
	1, 2, 1,
	2, 5, 3,
	3, 6, 9,
	1, 4, 6,
}

var sampleSquare = []float64{
	1, 2, 3, 4,
	2, 3, 5, 7,
	2, 4, 8, 16,
}

func main() {
	var (
		precision = flag.Int("precision", 2, "Digits after the decimal point")
		n         = flag.Int("n", 4, "Order of the random matrix")
		seed      = flag.Uint64("seed", 1, "Seed for the random matrix")
		level     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		asJSON    = flag.Bool("json", false, "Emit JSON logs instead of console output")
	)
	flag.Parse()

	logger, err := newLogger(os.Stderr, *level, *asJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matrixdemo: %v\n", err)
		os.Exit(2)
	}

	d := demo{out: os.Stdout, log: logger, precision: *precision}
	if err = d.run(*n, *seed); err != nil {
		logger.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

// newLogger builds a console (or JSON) zerolog logger at the given level.
func newLogger(w io.Writer, level string, asJSON bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

type demo struct {
	out       io.Writer
	log       zerolog.Logger
	precision int
}

func (d demo) run(n int, seed uint64) error {
	if n < 1 {
		return fmt.Errorf("order must be >= 1, got %d", n)
	}

	// Sample matrices.
	m, err := matrix.NewDenseFrom(4, 3, sampleData)
	if err != nil {
		return err
	}
	defer m.Release()
	if err = d.show("sample 4x3", m); err != nil {
		return err
	}

	sq, err := matrix.NewDenseFrom(3, 4, sampleSquare)
	if err != nil {
		return err
	}
	defer sq.Release()

	I2, err := matrix.NewIdentity(2)
	if err != nil {
		return err
	}
	defer I2.Release()
	if _, err = matrix.Product(I2, sq); errors.Is(err, matrix.ErrDimensionMismatch) {
		d.log.Warn().Err(err).Msg("I2 x square rejected")
	} else if err != nil {
		return err
	}

	I3, err := matrix.NewIdentity(sq.Rows())
	if err != nil {
		return err
	}
	defer I3.Release()
	prod, err := d.timed("I3 x square", func() (*matrix.Dense, error) { return matrix.Product(I3, sq) })
	if err != nil {
		return err
	}
	defer prod.Release()
	if err = d.show("I3 x square", prod); err != nil {
		return err
	}

	// Random square matrix.
	a, err := randomDense(n, seed)
	if err != nil {
		return err
	}
	defer a.Release()
	if err = d.show("random A", a); err != nil {
		return err
	}

	return d.decompose(a)
}

// decompose runs the decompositions on a and logs each result.
func (d demo) decompose(a *matrix.Dense) error {
	start := time.Now()
	lu, err := matrix.LU(a)
	switch {
	case errors.Is(err, matrix.ErrSingular):
		d.log.Warn().Err(err).Msg("A is singular; skipping LU and inverse")
	case err != nil:
		return err
	default:
		defer lu.Release()
		d.log.Info().Ints("perm", lu.Perm).Float64("sign", lu.Sign()).Dur("took", time.Since(start)).Msg("LU")
		if err = d.show("U", lu.U); err != nil {
			return err
		}
		inv, err := matrix.Inverse(a)
		if err != nil {
			return err
		}
		defer inv.Release()
		if err = d.show("inverse", inv); err != nil {
			return err
		}
	}

	det, err := matrix.Det(a)
	if err != nil {
		return err
	}
	tr, err := matrix.Trace(a)
	if err != nil {
		return err
	}
	d.log.Info().Float64("det", det).Float64("trace", tr).Msg("scalars")

	start = time.Now()
	qr, err := matrix.QR(a)
	if err != nil {
		return err
	}
	defer qr.Release()
	d.log.Info().Dur("took", time.Since(start)).Msg("QR")
	if err = d.show("R", qr.R); err != nil {
		return err
	}

	start = time.Now()
	svd, err := matrix.SVD(a)
	if err != nil {
		return err
	}
	defer svd.Release()
	d.log.Info().Floats64("sigma", svd.Values()).Dur("took", time.Since(start)).Msg("SVD")

	// A + Aᵀ is symmetric, so its eigenvalues are real.
	at, err := matrix.TransposeOf(a)
	if err != nil {
		return err
	}
	defer at.Release()
	sym, err := matrix.ZerosLike(a)
	if err != nil {
		return err
	}
	defer sym.Release()
	if err = matrix.Add(a, at, sym); err != nil {
		return err
	}
	start = time.Now()
	eig, err := matrix.Eigen(sym)
	if errors.Is(err, matrix.ErrNotDiagonalizable) || errors.Is(err, matrix.ErrNotConverged) {
		d.log.Warn().Err(err).Msg("eigen decomposition unavailable")
		return nil
	}
	if err != nil {
		return err
	}
	defer eig.Release()
	d.log.Info().Floats64("lambda", eig.Values()).Dur("took", time.Since(start)).Msg("Eigen(A + Aᵀ)")

	return d.show("eigenvectors", eig.X)
}

// timed runs f and logs its duration under name.
func (d demo) timed(name string, f func() (*matrix.Dense, error)) (*matrix.Dense, error) {
	start := time.Now()
	res, err := f()
	ev := d.log.Debug()
	if err != nil {
		ev = d.log.Error().Err(err)
	}
	ev.Str("op", name).Dur("took", time.Since(start)).Msg("done")

	return res, err
}

// show logs the shape of m and prints it.
func (d demo) show(name string, m *matrix.Dense) error {
	r, c := m.Shape()
	d.log.Info().Str("matrix", name).Int("rows", r).Int("cols", c).Msg("print")

	return printer.Fprint(d.out, m, d.precision)
}

// randomDense fills an n×n matrix with integers in [-9, 9] from a PCG stream.
func randomDense(n int, seed uint64) (*matrix.Dense, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = float64(rng.IntN(19) - 9)
	}

	return matrix.NewDenseFrom(n, n, data)
}
