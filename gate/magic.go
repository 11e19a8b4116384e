// SPDX-License-Identifier: MIT

package gate

import (
	"math"
	"math/cmplx"
)

// invSqrt2 is 1/√2.
var invSqrt2 = 1 / math.Sqrt2

// Magic is the change of basis Q from the canonical basis to the magic Bell
// basis:
//
//	Q = 1/√2 · [[1, 0,  0,  i],
//	            [0, i,  1,  0],
//	            [0, i, −1,  0],
//	            [1, 0,  0, −i]]
//
// In the magic basis every local gate SU(2)⊗SU(2) is a real orthogonal
// matrix, and σxσx, σyσy, σzσz are simultaneously diagonal.
var Magic = Gate{
	{complex(invSqrt2, 0), 0, 0, complex(0, invSqrt2)},
	{0, complex(0, invSqrt2), complex(invSqrt2, 0), 0},
	{0, complex(0, invSqrt2), complex(-invSqrt2, 0), 0},
	{complex(invSqrt2, 0), 0, 0, complex(0, -invSqrt2)},
}

// MagicDagger is Q†, the inverse change of basis.
var MagicDagger = Magic.Dagger()

// ToMagic expresses g in the magic basis: Q†·g·Q.
// No validation is performed; see MagicTransform.
func ToMagic(g Gate) Gate { return MagicDagger.Mul(g).Mul(Magic) }

// FromMagic maps an operator given in the magic basis back to the canonical
// basis: Q·g·Q†.
func FromMagic(g Gate) Gate { return Magic.Mul(g).Mul(MagicDagger) }

// MagicTransform validates that g is unitary and returns Q†·g·Q.
//
// Errors:
//   - ErrInvalidGate (wrapped with "MagicTransform") if g fails
//     ValidateUnitary under opts.
func MagicTransform(g Gate, opts ...Option) (Gate, error) {
	if err := ValidateUnitary(g, opts...); err != nil {
		return Gate{}, gateErrorf(opMagicTransform, err)
	}

	return ToMagic(g), nil
}

// canonicalPhaseSigns holds the signs (s1, s2, s3) of the magic-basis
// eigenphases θₖ = s1·c1 + s2·c2 + s3·c3 of c1·σxσx + c2·σyσy + c3·σzσz.
var canonicalPhaseSigns = [Dim][3]float64{
	{+1, -1, +1},
	{+1, +1, -1},
	{-1, -1, -1},
	{-1, +1, +1},
}

// Canonical returns exp(iπ/2·(c1·σxσx + c2·σyσy + c3·σzσz)) for coordinates
// given in units of π. The gate is built as a diagonal phase matrix in the
// magic basis and mapped back, so no matrix exponential is needed.
func Canonical(c1, c2, c3 float64) Gate {
	var d [Dim]complex128
	for k, s := range canonicalPhaseSigns {
		theta := s[0]*c1 + s[1]*c2 + s[2]*c3
		d[k] = cmplx.Exp(complex(0, math.Pi/2*theta))
	}

	return FromMagic(Diag(d))
}
