// SPDX-License-Identifier: MIT

package weyl

import (
	"math"

	"github.com/katalvlaran/weylchamber/gate"
)

// Form selects the expression of the local-invariants functional.
type Form int

const (
	// FormInvariants is Σ (gₖ(O) − gₖ(U))²; zero iff O and U are locally
	// equivalent.
	FormInvariants Form = iota

	// FormCoordinates is Π cos(π·Δcₖ/2) over the coordinate differences;
	// one iff O and U are locally equivalent.
	FormCoordinates
)

// String implements fmt.Stringer.
func (f Form) String() string {
	switch f {
	case FormInvariants:
		return "invariants"
	case FormCoordinates:
		return "coordinates"
	default:
		return "unknown"
	}
}

// LocalInvariantsFunctional compares the local-equivalence classes of an
// optimal gate o and an achieved gate u. Both gates are validated under
// opts; rounding is not applied to the functional's value.
//
// Errors:
//   - ErrUnknownForm (wrapped) for a Form outside the declared set.
//   - any error of Invariants or FromGate.
func LocalInvariantsFunctional(o, u gate.Gate, form Form, opts ...Option) (float64, error) {
	switch form {
	case FormInvariants:
		lo, err := Invariants(o, opts...)
		if err != nil {
			return 0, weylErrorf(opFunctional, err)
		}
		lu, err := Invariants(u, opts...)
		if err != nil {
			return 0, weylErrorf(opFunctional, err)
		}

		return lo.Sub(lu).Norm2(), nil

	case FormCoordinates:
		co, err := FromGate(o, opts...)
		if err != nil {
			return 0, weylErrorf(opFunctional, err)
		}
		cu, err := FromGate(u, opts...)
		if err != nil {
			return 0, weylErrorf(opFunctional, err)
		}
		d := co.Sub(cu)

		return math.Cos(math.Pi*d.C1/2) * math.Cos(math.Pi*d.C2/2) * math.Cos(math.Pi*d.C3/2), nil
	}

	return 0, weylErrorf(opFunctional, ErrUnknownForm)
}
