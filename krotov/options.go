// SPDX-License-Identifier: MIT

// Package krotov: functional configuration for chi constructors.
//
// Design goals:
//   - Weights and step sizes are named options with documented defaults.
//   - The weyl and entangler calls made on the achieved gate are
//     configurable, but rounding and the unitarity check are always off
//     there: propagated gates leak and gradients need unrounded values.
//   - Panic only on invalid parameters (programmer error).
package krotov

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/weylchamber/entangler"
	"github.com/katalvlaran/weylchamber/weyl"
)

// ---------- Defaults ----------

const (
	// DefaultUnitarityWeight is the weight w of the unitarity term
	// tr(U†U)/4 − 1. With zero weight a perfect entangler yields an
	// all-zero chi.
	DefaultUnitarityWeight = 0.0

	// DefaultStep is the central-difference step for strategies without an
	// analytic gradient.
	DefaultStep = 1e-6
)

const (
	panicWeightInvalid = "krotov: WithUnitarityWeight: weight must be in [0, 1)"
	panicStepInvalid   = "krotov: WithStep: step must be finite and positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	weight   float64 // DefaultUnitarityWeight
	step     float64 // DefaultStep
	weylOpts []weyl.Option
	entOpts  []entangler.Option
	logger   *slog.Logger
}

// WithUnitarityWeight sets w in (1 − w)·Φ + w·(tr(U†U)/4 − 1). Panics unless
// 0 ≤ w < 1.
func WithUnitarityWeight(w float64) Option {
	if math.IsNaN(w) || w < 0 || w >= 1 {
		panic(panicWeightInvalid)
	}

	return func(o *Options) { o.weight = w }
}

// WithStep sets the finite-difference step. Panics unless h is finite and
// positive.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithWeylOptions forwards options (degeneracy tolerance, handler, logger)
// to the weyl calls on the achieved gate.
func WithWeylOptions(opts ...weyl.Option) Option {
	return func(o *Options) { o.weylOpts = append(o.weylOpts, opts...) }
}

// WithEntanglerOptions forwards options (tolerance, units) to the
// perfect-entangler test and distance.
func WithEntanglerOptions(opts ...entangler.Option) Option {
	return func(o *Options) { o.entOpts = append(o.entOpts, opts...) }
}

// WithLogger sets the logger for per-call Debug records. A nil logger
// restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{weight: DefaultUnitarityWeight, step: DefaultStep}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default().With(slog.String("component", "krotov"))
	}
	// Later options win: the achieved gate is never checked or rounded.
	o.weylOpts = append(o.weylOpts, weyl.WithoutUnitarityCheck(), weyl.WithoutRounding())

	return o
}
