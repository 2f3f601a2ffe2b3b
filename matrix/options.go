// SPDX-License-Identifier: MIT
// Package matrix: functional options for numeric policy of the kernels.
//
// Purpose:
//   - Single source of truth for tolerances and iteration caps used by
//     LU, QR, EigenSym, SVD and Eigen.
//   - Defaults are exported constants so callers can reason about them.
//
// Policy:
//   - Option constructors validate their argument eagerly and panic on
//     programmer errors (non-finite or negative epsilon, non-positive caps).
//   - Options are applied in order; last writer wins.

package matrix

import "math"

const (
	// DefaultEpsilon is the numerical-zero threshold (ε) used for pivot
	// selection, convergence and rank decisions. Kernels scale it by the
	// magnitude of their input where a relative test is meaningful.
	DefaultEpsilon = 1e-12

	// DefaultMaxIterations caps iterative kernels. Shifted QR counts one
	// QR step per iteration; Jacobi counts one sweep (n(n-1)/2 rotations)
	// per iteration.
	DefaultMaxIterations = 1000

	// DefaultValidateNaNInf makes Set/Fill reject NaN and ±Inf.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite and > 0"
	panicMaxIterInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved numeric policy.
type Options struct {
	eps            float64 // > 0; DefaultEpsilon
	maxIter        int     // > 0; DefaultMaxIterations
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations returns the resolved iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// ValidateNaNInf reports whether NaN/Inf rejection is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the tolerance ε. Panics if eps is not finite or eps <= 0.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithValidateNaNInf enables NaN/Inf rejection on write paths.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf rejection on write paths.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		maxIter:        DefaultMaxIterations,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
