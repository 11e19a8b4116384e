// SPDX-License-Identifier: MIT

package entangler

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

var invSqrt2 = 1 / math.Sqrt2

// facets lists the polyhedron's outer facets in tie-break order: where two
// facets are equally close, the first one is reported.
var facets = [...]Facet{
	{Region: RegionW0, Normal: [3]float64{invSqrt2, invSqrt2, 0}, Anchor: weyl.L},
	{Region: RegionW0Star, Normal: [3]float64{-invSqrt2, invSqrt2, 0}, Anchor: weyl.L},
	{Region: RegionW1, Normal: [3]float64{0, -invSqrt2, -invSqrt2}, Anchor: weyl.A2},
}

// Facets returns the facets that separate the perfect-entangler polyhedron
// from W0, W0* and W1, in that order.
func Facets() []Facet {
	out := make([]Facet, len(facets))
	copy(out, facets[:])

	return out
}

// NearestFacet returns the facet with the smallest signed distance to c and
// that distance (units of π). Ties go to the earlier facet of Facets, which
// fixes the active facet, and hence the gradient, on edges of the
// polyhedron.
func NearestFacet(c weyl.Coordinates) (Facet, float64) {
	best, bestD := facets[0], facets[0].SignedDistance(c)
	for _, f := range facets[1:] {
		if d := f.SignedDistance(c); d < bestD {
			best, bestD = f, d
		}
	}

	return best, bestD
}

// signedDistance snaps |d| ≤ tol to zero so that boundary points have
// exactly zero distance.
func signedDistance(c weyl.Coordinates, tol float64) float64 {
	_, d := NearestFacet(c)
	if math.Abs(d) <= tol {
		return 0
	}

	return d
}

// Distance returns the signed distance of c to the boundary of the
// perfect-entangler polyhedron: positive inside, zero on the boundary,
// negative outside. It is the minimum over the facets of the point-to-plane
// distance; inside the chamber at most one facet is violated, so outside
// the polyhedron it is the distance to the separating plane.
//
// The identity (O), A1 and SWAP (A3) are the farthest points, at −√2/4.
func Distance(c weyl.Coordinates, opts ...Option) float64 {
	o := gatherOptions(opts...)

	return o.scale(signedDistance(c, o.tol))
}

// IsPerfectEntangler reports whether c lies in the closed perfect-entangler
// polyhedron
//
//	c1 + c2 ≥ ½,  c1 − c2 ≤ ½,  c2 + c3 ≤ ½
//
// with every inequality relaxed by the tolerance. Exactly when Distance(c)
// is non-negative.
func IsPerfectEntangler(c weyl.Coordinates, opts ...Option) bool {
	o := gatherOptions(opts...)

	return signedDistance(c, o.tol) >= 0
}

// classifyRegion classifies c without a chamber check.
func classifyRegion(c weyl.Coordinates, tol float64) Region {
	for _, f := range facets {
		if f.SignedDistance(c) < -tol {
			return f.Region
		}
	}

	return RegionPE
}

// RegionOf returns the region of the chamber containing c: W0, W0*, W1 or PE.
// Facets are tested in the order of Facets. Coordinates are not folded,
// so A1 is in W0* while its canonical image O is in W0.
//
// Errors:
//   - weyl.ErrOutOfChamber (wrapped) if c is outside the chamber.
func RegionOf(c weyl.Coordinates, opts ...Option) (Region, error) {
	o := gatherOptions(opts...)
	if err := weyl.ValidateChamber(c, o.weylOpts...); err != nil {
		return 0, entanglerErrorf(opRegion, err)
	}

	return classifyRegion(c, o.tol), nil
}

// InRegion reports whether c lies in region r. Points outside the chamber
// are in no region. RegionSQ holds O and A1, within the tolerance.
//
// Errors:
//   - ErrUnknownRegion (wrapped) for an undeclared r.
func InRegion(r Region, c weyl.Coordinates, opts ...Option) (bool, error) {
	if !r.valid() {
		return false, entanglerErrorf(opInRegion, ErrUnknownRegion)
	}
	o := gatherOptions(opts...)
	if weyl.ValidateChamber(c, o.weylOpts...) != nil {
		return false, nil
	}
	switch r {
	case RegionWeyl:
		return true, nil
	case RegionSQ:
		return c.Dist(weyl.O) <= o.tol || c.Dist(weyl.A1) <= o.tol, nil
	}

	return classifyRegion(c, o.tol) == r, nil
}

// ProjectToPE returns the orthogonal projection of c onto the facet that
// separates its region from the perfect entanglers. Perfect entanglers are
// returned unchanged.
//
// Errors:
//   - weyl.ErrOutOfChamber (wrapped) if c is outside the chamber.
func ProjectToPE(c weyl.Coordinates, opts ...Option) (weyl.Coordinates, error) {
	o := gatherOptions(opts...)
	if err := weyl.ValidateChamber(c, o.weylOpts...); err != nil {
		return weyl.Coordinates{}, entanglerErrorf(opProject, err)
	}
	r := classifyRegion(c, o.tol)
	if r == RegionPE {
		return c, nil
	}
	for _, f := range facets {
		if f.Region != r {
			continue
		}
		p := c.Array()
		floats.AddScaled(p[:], -f.SignedDistance(c), f.Normal[:])

		return weyl.Coordinates{C1: p[0], C2: p[1], C3: p[2]}, nil
	}

	return c, nil
}

// concurrenceSnap is the distance from 0 or 1 below which a concurrence is
// reported as exactly 0 or 1.
const concurrenceSnap = 1e-15

// Concurrence returns the maximal concurrence the gate of class c can
// create from a product state: 1 for perfect entanglers, otherwise
// max |sin π(cᵢ ± cⱼ)| over the pairs of coordinates.
func Concurrence(c weyl.Coordinates, opts ...Option) float64 {
	if IsPerfectEntangler(c, opts...) {
		return 1
	}
	var (
		a    = c.Array()
		best float64
	)
	for i := range a {
		j := (i + 2) % len(a)
		best = math.Max(best, math.Abs(math.Sin(math.Pi*(a[i]-a[j]))))
		best = math.Max(best, math.Abs(math.Sin(math.Pi*(a[i]+a[j]))))
	}
	switch {
	case best < concurrenceSnap:
		return 0
	case 1-best < concurrenceSnap:
		return 1
	}

	return best
}

// Classify computes the invariants, coordinates, region, distance and
// concurrence of g in one pass.
//
// Errors:
//   - any error of weyl.Invariants or weyl.FromGate (gate.ErrInvalidGate,
//     weyl.ErrNumericalDegeneracy, weyl.ErrEigenFailed), wrapped.
func Classify(g gate.Gate, opts ...Option) (Classification, error) {
	o := gatherOptions(opts...)
	li, err := weyl.Invariants(g, o.weylOpts...)
	if err != nil {
		return Classification{}, entanglerErrorf(opClassify, err)
	}
	c, err := weyl.FromGate(g, o.weylOpts...)
	if err != nil {
		return Classification{}, entanglerErrorf(opClassify, err)
	}

	d := signedDistance(c, o.tol)
	out := Classification{
		Coordinates:      c,
		Invariants:       li,
		Region:           classifyRegion(c, o.tol),
		Distance:         o.scale(d),
		Concurrence:      Concurrence(c, opts...),
		PerfectEntangler: d >= 0,
	}
	o.logger.Debug("classified",
		slog.String("coordinates", c.String()),
		slog.String("region", out.Region.String()),
		slog.Float64("distance", out.Distance),
	)

	return out, nil
}
