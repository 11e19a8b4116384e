// SPDX-License-Identifier: MIT

package entangler

import (
	"math"

	"github.com/katalvlaran/weylchamber/weyl"
)

// FPE returns the perfect-entangler functional F_PE = g3·r − g1 with
// r = |g1 + i·g2|, a quarter of the product of the pairwise sums of the
// cosine roots. It vanishes on the facets of the perfect-entangler
// polyhedron; for the identity it is 2.
func FPE(li weyl.LocalInvariants) float64 {
	f := li.G3*li.Modulus() - li.G1
	if f == 0 {
		return 0
	}

	return f
}

// IsPerfectEntanglerInvariants decides perfect-entangler membership from the
// local invariants alone:
//
//	g3·F_PE ≤ tol  or  g3² + 4r − 1 ≤ tol,  r = |g1 + i·g2|
//
// It agrees with IsPerfectEntangler on the coordinates of the same gate.
// Non-finite invariants are never perfect entanglers.
func IsPerfectEntanglerInvariants(li weyl.LocalInvariants, opts ...Option) bool {
	if !li.IsFinite() {
		return false
	}
	o := gatherOptions(opts...)
	r := li.Modulus()
	if li.G3*FPE(li) <= o.tol {
		return true
	}

	return li.G3*li.G3+4*r-1 <= o.tol
}

// InvariantDistance returns the signed distance of the class with
// invariants li to the perfect-entangler boundary: positive inside, zero on
// the boundary (within the tolerance), negative outside.
//
// ScaleRaw measures in invariant space. With uₖ the roots of weyl.CosineRoots
// the pairwise sums sₖ = g3 − uₖ are all of one sign exactly outside the
// polyhedron, and the distance is min(−min sₖ, max sₖ): 0 for CNOT, 1 for
// the B gate, −2 for the identity and SWAP.
//
// ScaleCoordinates maps li to coordinates with weyl.FromInvariants and
// returns Distance in the configured units, the quantity whose gradient the
// chi constructors follow.
//
// Errors:
//   - weyl.ErrInvalidInvariants (wrapped) for NaN/Inf input.
//   - ErrUnknownScale (wrapped) for an undeclared scale.
func InvariantDistance(li weyl.LocalInvariants, scale Scale, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	switch scale {
	case ScaleRaw:
		u, err := weyl.CosineRoots(li, o.weylOpts...)
		if err != nil {
			return 0, entanglerErrorf(opInvDistance, err)
		}
		var (
			lo = math.Inf(1)
			hi = math.Inf(-1)
		)
		for _, x := range u {
			s := li.G3 - x
			lo = math.Min(lo, s)
			hi = math.Max(hi, s)
		}
		d := math.Min(-lo, hi)
		if math.Abs(d) <= o.tol {
			return 0, nil
		}

		return d, nil
	case ScaleCoordinates:
		c, err := weyl.FromInvariants(li, o.weylOpts...)
		if err != nil {
			return 0, entanglerErrorf(opInvDistance, err)
		}

		return o.scale(signedDistance(c, o.tol)), nil
	default:
		return 0, entanglerErrorf(opInvDistance, ErrUnknownScale)
	}
}
