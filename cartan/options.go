// SPDX-License-Identifier: MIT

// Package cartan: functional configuration for decompositions and fits.
//
// Design goals:
//   - Restart counts, limits and the seed are named options with documented
//     defaults; the same seed always yields the same fit.
//   - The target class is validated by weyl.CanonicalGate, configurable
//     through WithWeylOptions (e.g. weyl.WithFolding).
//   - Panic only on invalid parameters (programmer error).
package cartan

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/weylchamber/weyl"
)

// ---------- Defaults ----------

const (
	// DefaultRestarts is the number of local refinements tried by
	// ClosestLocallyEquivalent before the best one is returned.
	DefaultRestarts = 4

	// DefaultLimit is the residual ‖u − fit‖_F at or below which the search
	// stops early.
	DefaultLimit = 1e-8

	// DefaultMaxIterations bounds the major iterations of one refinement.
	DefaultMaxIterations = 200

	// DefaultUnitarityTolerance is the ε of the unitarity check on inputs.
	DefaultUnitarityTolerance = weyl.DefaultUnitarityTolerance
)

const (
	panicRestartsInvalid   = "cartan: WithRestarts: n must be positive"
	panicLimitInvalid      = "cartan: WithLimit: limit must be finite, non-negative"
	panicIterationsInvalid = "cartan: WithMaxIterations: n must be positive"
	panicUnitarityInvalid  = "cartan: WithUnitarityTolerance: eps must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	seed         int64   // 0 selects rng.DefaultSeed
	restarts     int     // DefaultRestarts
	limit        float64 // DefaultLimit
	maxIter      int     // DefaultMaxIterations
	unitarityTol float64 // DefaultUnitarityTolerance
	weylOpts     []weyl.Option
	logger       *slog.Logger
}

// WithSeed seeds the jitter of restarts after the first. Zero selects the
// package default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRestarts sets the number of refinements. Panics if n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(panicRestartsInvalid)
	}

	return func(o *Options) { o.restarts = n }
}

// WithLimit sets the early-exit residual. Panics unless limit is finite and
// non-negative.
func WithLimit(limit float64) Option {
	if !isFiniteNonNegative(limit) {
		panic(panicLimitInvalid)
	}

	return func(o *Options) { o.limit = limit }
}

// WithMaxIterations bounds the major iterations of each refinement. Panics
// if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithUnitarityTolerance sets the ε of the unitarity check on input gates.
// Panics unless eps is finite and non-negative.
func WithUnitarityTolerance(eps float64) Option {
	if !isFiniteNonNegative(eps) {
		panic(panicUnitarityInvalid)
	}

	return func(o *Options) { o.unitarityTol = eps }
}

// WithWeylOptions forwards options to the validation of target coordinates.
func WithWeylOptions(opts ...weyl.Option) Option {
	return func(o *Options) { o.weylOpts = append(o.weylOpts, opts...) }
}

// WithLogger sets the logger for per-restart Debug records. A nil logger
// restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		restarts:     DefaultRestarts,
		limit:        DefaultLimit,
		maxIter:      DefaultMaxIterations,
		unitarityTol: DefaultUnitarityTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default().With(slog.String("component", "cartan"))
	}

	return o
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
