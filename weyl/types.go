// SPDX-License-Identifier: MIT

package weyl

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opInvariants     = "Invariants"
	opJacobian       = "InvariantJacobian"
	opFromGate       = "FromGate"
	opFromInvariants = "FromInvariants"
	opCosineRoots    = "CosineRoots"
	opCanonicalGate  = "CanonicalGate"
	opValidate       = "ValidateChamber"
	opDiagonalize    = "Diagonalize"
	opFunctional     = "LocalInvariantsFunctional"
)

// weylErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func weylErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LocalInvariants is the triple (g1, g2, g3) of Makhlin invariants. Two
// gates with equal invariants differ only by single-qubit gates before and
// after (and a global phase).
//
// For unitary gates g1 ∈ [−1, 1], g2 ∈ [−¼, ¼] and g3 ∈ [−3, 3].
type LocalInvariants struct {
	G1, G2, G3 float64
}

// Modulus returns |g1 + i·g2|.
func (li LocalInvariants) Modulus() float64 { return math.Hypot(li.G1, li.G2) }

// IsFinite reports whether no component is NaN or ±Inf.
func (li LocalInvariants) IsFinite() bool {
	for _, x := range [3]float64{li.G1, li.G2, li.G3} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Sub returns the component-wise difference li − o.
func (li LocalInvariants) Sub(o LocalInvariants) LocalInvariants {
	return LocalInvariants{G1: li.G1 - o.G1, G2: li.G2 - o.G2, G3: li.G3 - o.G3}
}

// Norm2 returns g1² + g2² + g3².
func (li LocalInvariants) Norm2() float64 {
	return li.G1*li.G1 + li.G2*li.G2 + li.G3*li.G3
}

// String implements fmt.Stringer.
func (li LocalInvariants) String() string {
	return fmt.Sprintf("(g1=%.8g, g2=%.8g, g3=%.8g)", li.G1, li.G2, li.G3)
}

// Coordinates is a point (c1, c2, c3) of the Weyl chamber in units of π:
// the class of exp(iπ/2·(c1·σxσx + c2·σyσy + c3·σzσz)).
type Coordinates struct {
	C1, C2, C3 float64
}

// Array returns the coordinates as [c1, c2, c3].
func (c Coordinates) Array() [3]float64 { return [3]float64{c.C1, c.C2, c.C3} }

// Sub returns c − o.
func (c Coordinates) Sub(o Coordinates) Coordinates {
	return Coordinates{C1: c.C1 - o.C1, C2: c.C2 - o.C2, C3: c.C3 - o.C3}
}

// Dist returns the Euclidean distance |c − o|.
func (c Coordinates) Dist(o Coordinates) float64 {
	d := c.Sub(o)

	return math.Sqrt(d.C1*d.C1 + d.C2*d.C2 + d.C3*d.C3)
}

// Radians returns the coordinates scaled by π.
func (c Coordinates) Radians() Coordinates {
	return Coordinates{C1: math.Pi * c.C1, C2: math.Pi * c.C2, C3: math.Pi * c.C3}
}

// IsFinite reports whether no coordinate is NaN or ±Inf.
func (c Coordinates) IsFinite() bool {
	for _, x := range c.Array() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%.8g, %.8g, %.8g)", c.C1, c.C2, c.C3)
}
