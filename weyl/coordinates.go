// SPDX-License-Identifier: MIT

package weyl

import (
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/weylchamber/gate"
)

// tripleRootTolerance is the |p| below which the depressed cubic of
// FromInvariants is treated as having a triple root.
const tripleRootTolerance = 1e-14

// cosineClampSlack is how far a root may leave [−1, 1] before the clamp is
// reported as a degeneracy advisory.
const cosineClampSlack = 1e-9

// Round-off splits a double root of the cosine cubic by ~√ε and a triple
// root by ~∛ε. When a split cluster sits at ±1 the arccos turns that into a
// large coordinate error, so clusters narrower than these widths with a
// member outside [−1, 1] are replaced by their mean.
const (
	pairSplitWidth   = 1e-7
	tripleSplitWidth = 1e-5
)

// g2SignTolerance is the |g2| below which the sign of g2 is not trusted;
// such classes lie on the base triangle, where both halves are identified.
const g2SignTolerance = 1e-12

// FromGate returns the canonical Weyl-chamber coordinates of g.
//
// Implementation:
//   - Stage 1: m = Bᵀ·B in the magic basis, diagonalized with Diagonalize.
//   - Stage 2: eigenphases of m/√det g, each as 2Sₖ ∈ (−½, 3/2] (units of π).
//   - Stage 3: Sₖ sorted descending; n = round(ΣSₖ) leading entries are
//     shifted by −1 and the list is rotated left by n.
//   - Stage 4: c1 = S0 + S1, c2 = S0 + S2, c3 = S1 + S2; a negative c3 is
//     reflected by (c1, c3) ↦ (1 − c1, −c3).
//   - Stage 5: base-triangle identification, folding of any residual
//     out-of-chamber round-off, rounding to the configured precision.
//
// Behavior highlights:
//   - Degenerate eigenvalues are handled by the eigensolver, not by sorting
//     eigenvectors; only eigenphase values are ordered.
//   - Global phase and local gates do not change the result.
//
// Errors:
//   - gate.ErrInvalidGate (wrapped) on a failed unitarity check.
//   - ErrNumericalDegeneracy (wrapped) for a singular gate.
//   - ErrEigenFailed (wrapped) if diagonalization fails.
func FromGate(g gate.Gate, opts ...Option) (Coordinates, error) {
	o := gatherOptions(opts...)
	c, err := rawFromGate(g, &o)
	if err != nil {
		return Coordinates{}, err
	}

	return o.roundCoordinates(c), nil
}

func rawFromGate(g gate.Gate, o *Options) (Coordinates, error) {
	if err := o.checkGate(g, opFromGate); err != nil {
		return Coordinates{}, err
	}
	ub := gate.ToMagic(g)
	d, err := o.normalization(ub, opFromGate)
	if err != nil {
		return Coordinates{}, err
	}
	es, err := Diagonalize(ub.Transpose().Mul(ub))
	if err != nil {
		return Coordinates{}, weylErrorf(opFromGate, err)
	}

	var (
		sq   = cmplx.Sqrt(d)
		half [gate.Dim]float64
		sum  float64
	)
	for k, ev := range es.Values {
		x := cmplx.Phase(ev/sq) / math.Pi
		if x <= -0.5 {
			x += 2
		}
		half[k] = x / 2
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(half[:])))
	for _, x := range half {
		sum += x
	}
	n := int(math.Round(sum))
	n = ((n % gate.Dim) + gate.Dim) % gate.Dim
	for k := 0; k < n; k++ {
		half[k]--
	}
	var s [gate.Dim]float64
	for k := range s {
		s[k] = half[(k+n)%gate.Dim]
	}

	c := Coordinates{C1: s[0] + s[1], C2: s[0] + s[2], C3: s[1] + s[2]}
	if c.C3 < 0 {
		c.C1, c.C3 = 1-c.C1, -c.C3
	}

	return o.settle(c), nil
}

// FromInvariants returns the canonical coordinates of the class with local
// invariants li.
//
// Implementation:
//   - uₖ = cos(2π·cₖ) are the roots of x³ − g3·x² + (4|G1| − 1)·x − (4g1 − g3);
//     they are found with the trigonometric (Viète) solution of the cubic.
//   - cₖ = arccos(uₖ)/(2π) with roots ascending gives c1 ≥ c2 ≥ c3 ∈ [0, ½].
//   - The sign of g2 = ¼·Π sin 2πcₖ selects the half of the chamber:
//     g2 < 0 ⇒ c1 ↦ 1 − c1.
//   - Root clusters split by round-off at ±1 are merged (see
//     mergeSplitRoots), which keeps CNOT, iSWAP, SWAP and the identity
//     accurate to ~1e-8.
//
// Notes:
//   - Root-finding is square-root ill-conditioned at degenerate classes
//     (repeated uₖ, e.g. CNOT, SWAP); expect ~1e-8 accuracy there versus
//     ~1e-15 for FromGate. Close to O the invariants depend on |c|² only
//     and the loss is larger. Use FromGate when a gate is available.
//
// Errors:
//   - ErrInvalidInvariants (wrapped) for NaN/Inf input.
func FromInvariants(li LocalInvariants, opts ...Option) (Coordinates, error) {
	o := gatherOptions(opts...)
	c, err := rawFromInvariants(li, &o)
	if err != nil {
		return Coordinates{}, err
	}

	return o.roundCoordinates(c), nil
}

func rawFromInvariants(li LocalInvariants, o *Options) (Coordinates, error) {
	if !li.IsFinite() {
		return Coordinates{}, weylErrorf(opFromInvariants, ErrInvalidInvariants)
	}
	u := o.cosineRoots(li)

	var a [3]float64
	for k, x := range u {
		if math.Abs(x) > 1+cosineClampSlack {
			o.advise(opFromInvariants, ErrNumericalDegeneracy, slog.Float64("root", x))
		}
		a[k] = math.Acos(clamp(x, -1, 1)) / (2 * math.Pi)
	}
	c := Coordinates{C1: a[0], C2: a[1], C3: a[2]}
	if li.G2 < -g2SignTolerance {
		c.C1 = 1 - c.C1
	}

	return o.settle(c), nil
}

// CosineRoots returns uₖ = cos(2π·cₖ) for the class with invariants li, in
// ascending order: the real roots of x³ − g3·x² + (4r − 1)·x − (4g1 − g3),
// r = |g1 + i·g2|. Pairwise sums uᵢ + uⱼ = g3 − uₖ change sign exactly on
// the facets of the perfect-entangler polyhedron.
//
// Errors:
//   - ErrInvalidInvariants (wrapped) for NaN/Inf input.
func CosineRoots(li LocalInvariants, opts ...Option) ([3]float64, error) {
	if !li.IsFinite() {
		return [3]float64{}, weylErrorf(opCosineRoots, ErrInvalidInvariants)
	}
	o := gatherOptions(opts...)

	return o.cosineRoots(li), nil
}

// cosineRoots returns the three real roots (ascending) of
// x³ − g3·x² + (4r − 1)·x − (4g1 − g3), r = |g1 + i·g2|.
func (o *Options) cosineRoots(li LocalInvariants) [3]float64 {
	var (
		a = -li.G3
		b = 4*li.Modulus() - 1
		c = -(4*li.G1 - li.G3)
		p = b - a*a/3
		q = 2*a*a*a/27 - a*b/3 + c
	)
	if p > -tripleRootTolerance {
		if p > tripleRootTolerance {
			o.advise(opFromInvariants, ErrNumericalDegeneracy, slog.Float64("p", p))
		}

		return [3]float64{-a / 3, -a / 3, -a / 3}
	}
	var (
		m   = 2 * math.Sqrt(-p/3)
		arg = clamp(3*q/(p*m), -1, 1)
		th  = math.Acos(arg) / 3
		u   [3]float64
	)
	for k := range u {
		u[k] = m*math.Cos(th-2*math.Pi*float64(k)/3) - a/3
	}
	sort.Float64s(u[:])

	return mergeSplitRoots(u)
}

// mergeSplitRoots collapses root clusters split by round-off at ±1.
// u must be sorted ascending.
func mergeSplitRoots(u [3]float64) [3]float64 {
	if (u[2] > 1 || u[0] < -1) && u[2]-u[0] < tripleSplitWidth {
		m := (u[0] + u[1] + u[2]) / 3

		return [3]float64{m, m, m}
	}
	if u[2] > 1 && u[2]-u[1] < pairSplitWidth {
		m := (u[1] + u[2]) / 2
		u[1], u[2] = m, m
	}
	if u[0] < -1 && u[1]-u[0] < pairSplitWidth {
		m := (u[0] + u[1]) / 2
		u[0], u[1] = m, m
	}

	return u
}

// CanonicalGate returns the canonical representative gate of c,
// exp(iπ/2·(c1·σxσx + c2·σyσy + c3·σzσz)), built as a diagonal phase matrix
// in the magic basis and mapped back to the canonical basis.
//
// Errors:
//   - ErrOutOfChamber (wrapped) if c violates the chamber inequalities by
//     more than the chamber tolerance and WithFolding was not given. With
//     WithFolding the point is folded first; non-finite input still fails.
func CanonicalGate(c Coordinates, opts ...Option) (gate.Gate, error) {
	o := gatherOptions(opts...)
	if !c.IsFinite() {
		return gate.Gate{}, fmt.Errorf("%s: %v: %w", opCanonicalGate, c, ErrOutOfChamber)
	}
	if !InChamber(c, o.chamberTol) {
		if !o.fold {
			return gate.Gate{}, fmt.Errorf("%s: %v: %w", opCanonicalGate, c, ErrOutOfChamber)
		}
		c = fold(c, o.chamberTol)
	}

	return gate.Canonical(c.C1, c.C2, c.C3), nil
}

// settle canonicalizes a raw map result and folds residual round-off that
// left the chamber.
func (o *Options) settle(c Coordinates) Coordinates {
	c = canonicalize(c, o.chamberTol)
	if !InChamber(c, o.chamberTol) {
		return fold(c, o.chamberTol)
	}

	return c
}

func (o *Options) roundCoordinates(c Coordinates) Coordinates {
	return Coordinates{C1: o.round(c.C1), C2: o.round(c.C2), C3: o.round(c.C3)}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
