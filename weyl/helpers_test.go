package weyl_test

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

// randomLocal draws k1⊗k2 with uniformly random Euler angles.
func randomLocal(rng *rand.Rand) gate.Gate {
	var p [gate.LocalParams]float64
	for i := range p {
		p[i] = 2 * math.Pi * rng.Float64()
	}

	return gate.LocalFromParams(p)
}

// randomChamberPoint samples the closed chamber by rejection and returns the
// canonical representative.
func randomChamberPoint(rng *rand.Rand) weyl.Coordinates {
	for {
		c := weyl.Coordinates{C1: rng.Float64(), C2: 0.5 * rng.Float64(), C3: 0.5 * rng.Float64()}
		if weyl.InChamber(c, 0) {
			return weyl.Fold(c)
		}
	}
}

// scrambled returns e^{iφ}·k1·A(c)·k2 for random locals and phase.
func scrambled(rng *rand.Rand, c weyl.Coordinates) gate.Gate {
	phase := cmplx.Exp(complex(0, 2*math.Pi*rng.Float64()))

	return randomLocal(rng).Mul(gate.Canonical(c.C1, c.C2, c.C3)).Mul(randomLocal(rng)).Scale(phase)
}

// nearVertex reports whether c is within r of a chamber vertex or of L.
// The inverse map from invariants loses accuracy close to those points.
func nearVertex(c weyl.Coordinates, r float64) bool {
	for _, v := range []weyl.Coordinates{weyl.O, weyl.A1, weyl.A2, weyl.A3, weyl.L} {
		if c.Dist(v) < r {
			return true
		}
	}

	return false
}

func assertCoordinatesNear(t testingT, want, got weyl.Coordinates, tol float64, msg string) {
	t.Helper()
	if want.Dist(got) > tol {
		t.Errorf("%s: want %v, got %v (|Δ|=%.3g)", msg, want, got, want.Dist(got))
	}
}

// testingT is the subset of testing.TB used by assertion helpers.
type testingT interface {
	Helper()
	Errorf(format string, args ...any)
}
