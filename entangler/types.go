// SPDX-License-Identifier: MIT

package entangler

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/weylchamber/weyl"
)

// Operation name constants for unified error wrapping.
const (
	opRegion      = "RegionOf"
	opInRegion    = "InRegion"
	opParseRegion = "ParseRegion"
	opProject     = "ProjectToPE"
	opInvDistance = "InvariantDistance"
	opRandomPoint = "RandomPoint"
	opRandomGate  = "RandomGate"
	opClassify    = "Classify"
)

func entanglerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Region names a part of the Weyl chamber.
//
// The chamber splits into the perfect-entangler polyhedron and three
// regions outside it, each cut off by one facet:
//
//	W0   c1 + c2 < ½   around O (weakly entangling gates near the identity)
//	W0*  c1 − c2 > ½   around A1
//	W1   c2 + c3 > ½   around A3 (gates near SWAP)
//
// RegionWeyl is the whole chamber and RegionSQ the local gates (O and A1);
// both are accepted by InRegion and the random generators.
type Region int

const (
	RegionPE Region = iota
	RegionW0
	RegionW0Star
	RegionW1
	RegionWeyl
	RegionSQ
)

var regionNames = [...]string{
	RegionPE:     "PE",
	RegionW0:     "W0",
	RegionW0Star: "W0*",
	RegionW1:     "W1",
	RegionWeyl:   "weyl",
	RegionSQ:     "SQ",
}

// String implements fmt.Stringer.
func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "unknown"
	}

	return regionNames[r]
}

func (r Region) valid() bool { return r >= 0 && int(r) < len(regionNames) }

// ParseRegion resolves a region by name ("PE", "W0", "W0*", "W1", "weyl",
// "SQ").
//
// Errors:
//   - ErrUnknownRegion (wrapped) for any other name.
func ParseRegion(name string) (Region, error) {
	for r, n := range regionNames {
		if n == name {
			return Region(r), nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", opParseRegion, name, ErrUnknownRegion)
}

// Facet is one boundary plane of the perfect-entangler polyhedron that
// separates it from an outer region of the chamber.
type Facet struct {
	Region Region           // outer region cut off by the facet
	Normal [3]float64       // unit normal pointing into the polyhedron
	Anchor weyl.Coordinates // a point of the plane
}

// SignedDistance returns n·(c − a): positive on the polyhedron side.
// The value is in units of π.
func (f Facet) SignedDistance(c weyl.Coordinates) float64 {
	d := c.Sub(f.Anchor).Array()

	return floats.Dot(f.Normal[:], d[:])
}

// Scale selects the metric of InvariantDistance.
type Scale int

const (
	// ScaleRaw is the distance in invariant space: the smallest margin of
	// the pairwise root sums of the invariants' cubic.
	ScaleRaw Scale = iota

	// ScaleCoordinates maps the invariants to coordinates and returns the
	// coordinate-space distance, in the configured Units.
	ScaleCoordinates
)

// Classification bundles everything known about one gate.
type Classification struct {
	Coordinates      weyl.Coordinates
	Invariants       weyl.LocalInvariants
	Region           Region
	Distance         float64 // signed, configured units
	Concurrence      float64
	PerfectEntangler bool
}
