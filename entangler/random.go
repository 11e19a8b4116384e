// SPDX-License-Identifier: MIT

package entangler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/internal/rng"
	"github.com/katalvlaran/weylchamber/weyl"
)

// RandomPoint draws canonical coordinates uniformly from region r by
// rejection sampling the box [0,1)×[0,½)×[0,½). RegionSQ yields O.
// A nil rnd selects the shared default stream; the same sequence always
// yields the same point.
//
// Errors:
//   - ErrUnknownRegion (wrapped) for an undeclared r.
func RandomPoint(rnd *rand.Rand, r Region, opts ...Option) (weyl.Coordinates, error) {
	if !r.valid() {
		return weyl.Coordinates{}, entanglerErrorf(opRandomPoint, ErrUnknownRegion)
	}
	if r == RegionSQ {
		return weyl.O, nil
	}
	var (
		o   = gatherOptions(opts...)
		src = rng.OrDefault(rnd)
	)
	for {
		c := weyl.Coordinates{C1: src.Float64(), C2: 0.5 * src.Float64(), C3: 0.5 * src.Float64()}
		if !weyl.InChamber(c, 0) {
			continue
		}
		c = weyl.Fold(c, o.weylOpts...)
		if r == RegionWeyl || classifyRegion(c, o.tol) == r {
			return c, nil
		}
	}
}

// randomLocal draws U2 ⊗ U2 with uniformly random angles.
func randomLocal(rnd *rand.Rand) gate.Gate {
	var p [gate.LocalParams]float64
	for i := range p {
		p[i] = 2 * math.Pi * rnd.Float64()
	}

	return gate.LocalFromParams(p)
}

// RandomGate returns k1·A(c)·k2 for c = RandomPoint(rnd, r) and random local
// gates k1, k2, so that the gate's class is uniform over the region. For
// RegionSQ it returns a random local gate.
//
// Errors:
//   - ErrUnknownRegion (wrapped) for an undeclared r.
func RandomGate(rnd *rand.Rand, r Region, opts ...Option) (gate.Gate, error) {
	if !r.valid() {
		return gate.Gate{}, entanglerErrorf(opRandomGate, ErrUnknownRegion)
	}
	src := rng.OrDefault(rnd)
	if r == RegionSQ {
		return randomLocal(src), nil
	}
	c, err := RandomPoint(src, r, opts...)
	if err != nil {
		return gate.Gate{}, entanglerErrorf(opRandomGate, err)
	}

	return randomLocal(src).Mul(gate.Canonical(c.C1, c.C2, c.C3)).Mul(randomLocal(src)), nil
}
