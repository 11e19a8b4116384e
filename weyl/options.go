// SPDX-License-Identifier: MIT

// Package weyl: functional configuration for invariant extraction, the
// coordinate maps and chamber checks.
//
// Design goals:
//   - Tolerances are named options with documented defaults, never literals
//     buried in algorithms.
//   - Deterministic behavior: no global state; the logger default is
//     resolved per call from slog.Default().
//   - Safe by construction: panic only on invalid parameters (programmer error).
package weyl

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/weylchamber/gate"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultUnitarityTolerance is the ε of the unitarity check applied to
	// every gate input.
	DefaultUnitarityTolerance = gate.DefaultTolerance

	// DefaultChamberTolerance is the slack allowed on every chamber
	// inequality, and the c3 threshold below which a point counts as lying on
	// the base triangle (where c1 and 1 − c1 are identified).
	DefaultChamberTolerance = 1e-7

	// DefaultPrecision is the number of decimal digits to which public
	// invariants and coordinates are rounded. Rounding snaps round-off noise
	// onto exact facet and vertex values (e.g. CNOT → (0.5, 0, 0)).
	DefaultPrecision = 8

	// DefaultDegeneracyTolerance is the |det| threshold under which the
	// determinant normalization raises a degeneracy advisory.
	DefaultDegeneracyTolerance = 1e-12

	// NoRounding disables rounding when passed to WithPrecision.
	NoRounding = -1

	// maxPrecision bounds WithPrecision; float64 carries ~15.9 digits.
	maxPrecision = 15
)

// ---------- Internal panic messages ----------

const (
	panicUnitarityTolInvalid = "weyl: WithUnitarityTolerance: eps must be finite, non-negative"
	panicChamberTolInvalid   = "weyl: WithChamberTolerance: tol must be finite, non-negative"
	panicPrecisionInvalid    = "weyl: WithPrecision: digits must be NoRounding or in [0, 15]"
	panicDegeneracyInvalid   = "weyl: WithDegeneracyTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// DegeneracyHandler receives non-fatal advisories. The error always matches
// ErrNumericalDegeneracy via errors.Is.
type DegeneracyHandler func(err error)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	unitarityTol   float64 // DefaultUnitarityTolerance
	checkUnitarity bool    // true
	chamberTol     float64 // DefaultChamberTolerance
	precision      int     // DefaultPrecision; NoRounding disables
	degeneracyTol  float64 // DefaultDegeneracyTolerance
	fold           bool    // false: CanonicalGate rejects out-of-chamber input
	logger         *slog.Logger
	onDegeneracy   DegeneracyHandler
}

// WithUnitarityTolerance sets the unitarity tolerance ε for gate inputs.
// Panics if eps is NaN, ±Inf or negative.
func WithUnitarityTolerance(eps float64) Option {
	if !isFiniteNonNegative(eps) {
		panic(panicUnitarityTolInvalid)
	}

	return func(o *Options) { o.unitarityTol = eps }
}

// WithoutUnitarityCheck accepts non-unitary gates, such as the projection
// of propagated states onto a logical subspace with leakage. Invariants stay
// well defined for any invertible gate; Weyl coordinates are then those of
// the invariants.
func WithoutUnitarityCheck() Option {
	return func(o *Options) { o.checkUnitarity = false }
}

// WithChamberTolerance sets the chamber-boundary tolerance.
// Panics if tol is NaN, ±Inf or negative.
func WithChamberTolerance(tol float64) Option {
	if !isFiniteNonNegative(tol) {
		panic(panicChamberTolInvalid)
	}

	return func(o *Options) { o.chamberTol = tol }
}

// WithPrecision sets the number of decimal digits of public results.
// NoRounding keeps full float64 precision.
func WithPrecision(digits int) Option {
	if digits != NoRounding && (digits < 0 || digits > maxPrecision) {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithoutRounding is shorthand for WithPrecision(NoRounding).
func WithoutRounding() Option { return WithPrecision(NoRounding) }

// WithDegeneracyTolerance sets the |det| threshold of the degeneracy
// advisory. Panics if tol is NaN, ±Inf or negative.
func WithDegeneracyTolerance(tol float64) Option {
	if !isFiniteNonNegative(tol) {
		panic(panicDegeneracyInvalid)
	}

	return func(o *Options) { o.degeneracyTol = tol }
}

// WithFolding makes CanonicalGate fold out-of-chamber coordinates into the
// chamber (best effort) instead of failing with ErrOutOfChamber.
func WithFolding() Option {
	return func(o *Options) { o.fold = true }
}

// WithLogger sets the logger used for Debug-level advisories.
// A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithDegeneracyHandler registers a callback for degeneracy advisories.
func WithDegeneracyHandler(h DegeneracyHandler) Option {
	return func(o *Options) { o.onDegeneracy = h }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		unitarityTol:   DefaultUnitarityTolerance,
		checkUnitarity: true,
		chamberTol:     DefaultChamberTolerance,
		precision:      DefaultPrecision,
		degeneracyTol:  DefaultDegeneracyTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default().With(slog.String("component", "weyl"))
	}

	return o
}

// advise reports a non-fatal degeneracy through the logger and handler.
func (o *Options) advise(op string, err error, attrs ...slog.Attr) {
	wrapped := weylErrorf(op, err)
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("op", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	o.logger.Debug(wrapped.Error(), args...)
	if o.onDegeneracy != nil {
		o.onDegeneracy(wrapped)
	}
}

// round applies the configured precision to x and clears negative zero.
func (o *Options) round(x float64) float64 {
	if o.precision == NoRounding {
		return x
	}
	p := math.Pow10(o.precision)
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}

	return r
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
