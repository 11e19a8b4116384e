// SPDX-License-Identifier: MIT

// Package entangler: functional configuration for classification and
// distance queries.
//
// Design goals:
//   - Tolerances and units are named options with documented defaults.
//   - Gate-level helpers (Classify, RandomGate) forward weyl options
//     unchanged, so one configuration drives the whole pipeline.
//   - Panic only on invalid parameters (programmer error).
package entangler

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/weylchamber/weyl"
)

// ---------- Defaults ----------

// DefaultTolerance is the slack on every facet inequality. Points within it
// of a facet are on the boundary: they count as perfect entanglers and their
// distance is exactly zero.
const DefaultTolerance = 1e-10

// Units selects the unit of coordinate-space distances.
type Units int

const (
	// UnitsPi measures distances in the chamber's own units (multiples of π).
	UnitsPi Units = iota

	// UnitsRadians measures distances in radians (UnitsPi × π), matching
	// gradients taken with respect to the angles πcₖ.
	UnitsRadians
)

// String implements fmt.Stringer.
func (u Units) String() string {
	switch u {
	case UnitsPi:
		return "pi"
	case UnitsRadians:
		return "radians"
	default:
		return "unknown"
	}
}

const (
	panicToleranceInvalid = "entangler: WithTolerance: tol must be finite, non-negative"
	panicUnitsInvalid     = "entangler: WithUnits: unknown units"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol      float64 // DefaultTolerance
	units    Units   // UnitsPi
	weylOpts []weyl.Option
	logger   *slog.Logger
}

// WithTolerance sets the facet tolerance. Panics if tol is NaN, ±Inf or
// negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithUnits sets the unit of returned distances. Panics on an unknown value.
func WithUnits(u Units) Option {
	if u != UnitsPi && u != UnitsRadians {
		panic(panicUnitsInvalid)
	}

	return func(o *Options) { o.units = u }
}

// WithWeylOptions forwards options to the weyl calls made on gates and
// invariants (tolerances, rounding, degeneracy handler).
func WithWeylOptions(opts ...weyl.Option) Option {
	return func(o *Options) { o.weylOpts = append(o.weylOpts, opts...) }
}

// WithLogger sets the logger used by Classify. A nil logger restores the
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, units: UnitsPi}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default().With(slog.String("component", "entangler"))
	}

	return o
}

// scale converts a distance in units of π to the configured units.
func (o *Options) scale(d float64) float64 {
	if o.units == UnitsRadians {
		return math.Pi * d
	}

	return d
}
