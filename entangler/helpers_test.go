package entangler_test

import (
	"github.com/katalvlaran/weylchamber/weyl"
)

// nearVertex reports whether c is within r of a chamber vertex or of L,
// where the inverse map from invariants is ill-conditioned.
func nearVertex(c weyl.Coordinates, r float64) bool {
	for _, v := range []weyl.Coordinates{weyl.O, weyl.A1, weyl.A2, weyl.A3, weyl.L} {
		if c.Dist(v) < r {
			return true
		}
	}

	return false
}

// lerp returns a + s·(b − a) + t·(c − a).
func lerp(a, b, c weyl.Coordinates, s, t float64) weyl.Coordinates {
	return weyl.Coordinates{
		C1: a.C1 + s*(b.C1-a.C1) + t*(c.C1-a.C1),
		C2: a.C2 + s*(b.C2-a.C2) + t*(c.C2-a.C2),
		C3: a.C3 + s*(b.C3-a.C3) + t*(c.C3-a.C3),
	}
}
