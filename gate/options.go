// SPDX-License-Identifier: MIT

// Package gate: functional configuration for validation helpers.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gate

import "math"

// DefaultTolerance is the unitarity tolerance ε used by ValidateUnitary and
// MagicTransform: max |(U†U − I)ᵢⱼ| ≤ ε.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "gate: WithTolerance: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the unitarity tolerance ε.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Propagated or optimized gates carry round-off of order 1e-12…1e-9;
//     loosen ε for them instead of re-normalizing the gate.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
