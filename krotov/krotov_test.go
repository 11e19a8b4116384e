package krotov_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/weylchamber/entangler"
	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/krotov"
	"github.com/katalvlaran/weylchamber/weyl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomLocal draws U2 ⊗ U2 with uniformly random angles.
func randomLocal(rng *rand.Rand) gate.Gate {
	var p [gate.LocalParams]float64
	for i := range p {
		p[i] = 2 * math.Pi * rng.Float64()
	}

	return gate.LocalFromParams(p)
}

// scrambled returns k1·A(c)·k2 for random locals.
func scrambled(rng *rand.Rand, c weyl.Coordinates) gate.Gate {
	return randomLocal(rng).Mul(gate.Canonical(c.C1, c.C2, c.C3)).Mul(randomLocal(rng))
}

// propagate returns the images of basis under u, as an optimizer would.
func propagate(t *testing.T, u gate.Gate, basis []gate.Ket) []gate.Ket {
	t.Helper()
	fw, err := gate.MappedBasis(u, basis)
	require.NoError(t, err)

	return fw
}

// fdWirtinger returns ½(∂f/∂Re + i·∂f/∂Im) for every entry of u.
func fdWirtinger(t *testing.T, f func(gate.Gate) float64, u gate.Gate, h float64) gate.Gate {
	t.Helper()
	var a gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			at := func(dz complex128) float64 {
				v := u
				v[i][j] += dz

				return f(v)
			}
			dx := (at(complex(h, 0)) - at(complex(-h, 0))) / (2 * h)
			dy := (at(complex(0, h)) - at(complex(0, -h))) / (2 * h)
			a[i][j] = complex(dx/2, dy/2)
		}
	}

	return a
}

func objective(t *testing.T, s krotov.Strategy, opts ...krotov.Option) func(gate.Gate) float64 {
	return func(u gate.Gate) float64 {
		v, err := krotov.Objective(u, s, opts...)
		require.NoError(t, err)

		return v
	}
}

var ascentPoints = []weyl.Coordinates{
	{C1: 0.2, C2: 0.1, C3: 0.05},
	{C1: 0.45, C2: 0.02, C3: 0.01},
	{C1: 0.85, C2: 0.1, C3: 0.05},
	{C1: 0.5, C2: 0.45, C3: 0.3},
}

// TestChi_ZeroAtPerfectEntangler checks the no-op boundary term.
func TestChi_ZeroAtPerfectEntangler(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)

	gates := []gate.Gate{gate.BGate, scrambled(rng, weyl.Coordinates{C1: 0.5, C2: 0.25})}
	for i := 0; i < 5; i++ {
		u, err := entangler.RandomGate(rng, entangler.RegionPE)
		require.NoError(t, err)
		gates = append(gates, u)
	}

	for _, s := range []krotov.Strategy{krotov.NearestByCoordinates{}, krotov.NearestByInvariants{}} {
		chi, err := krotov.NewChiConstructor(basis, s)
		require.NoError(t, err)
		for _, u := range gates {
			out, err := chi(propagate(t, u, basis))
			require.NoError(t, err)
			require.Len(t, out, gate.Dim)
			for _, k := range out {
				for _, x := range k {
					assert.Equal(t, complex128(0), x, "%v: chi must vanish at a perfect entangler", s)
				}
			}
		}
	}
}

// TestChi_Ascent checks that a small step of each state along its chi
// increases the objective and the distance to the perfect entanglers.
func TestChi_Ascent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	distance := krotov.NearestByCoordinates{}

	for _, c := range ascentPoints {
		u := scrambled(rng, c)
		for _, s := range []krotov.Strategy{krotov.NearestByCoordinates{}, krotov.NearestByInvariants{}} {
			chi, err := krotov.NewChiConstructor(basis, s)
			require.NoError(t, err)
			out, err := chi(propagate(t, u, basis))
			require.NoError(t, err)
			a, err := gate.FromStates(basis, out)
			require.NoError(t, err)
			require.Greater(t, a.Norm(), 0.0, "%v at %v", s, c)

			step := u.Add(a.Scale(1e-3))
			before, after := objective(t, s)(u), objective(t, s)(step)
			assert.Greater(t, after, before, "%v objective at %v", s, c)

			dBefore, dAfter := objective(t, distance)(u), objective(t, distance)(step)
			assert.Less(t, dBefore, 0.0)
			assert.Greater(t, dAfter, dBefore, "%v distance at %v", s, c)
		}
	}
}

// chamberPoint draws a Weyl-chamber point with every coordinate below r.
func chamberPoint(rng *rand.Rand, r float64) weyl.Coordinates {
	x := []float64{r * rng.Float64(), r * rng.Float64(), r * rng.Float64()}
	sort.Sort(sort.Reverse(sort.Float64Slice(x)))

	return weyl.Coordinates{C1: x[0], C2: x[1], C3: x[2]}
}

// TestChi_AscentNearIdentity steps along the coordinate chi close to O and
// along the O–L edge, where the coordinates move fastest per unit of gate.
func TestChi_AscentNearIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	s := krotov.NearestByCoordinates{}
	chi, err := krotov.NewChiConstructor(basis, s)
	require.NoError(t, err)

	points := []weyl.Coordinates{
		{C1: 0.003, C2: 0.001},
		{C1: 0.01, C2: 0.005, C3: 0.002},
		{C1: 0.015, C2: 0.008, C3: 0.003},
		{C1: 0.1},
		{C1: 0.25},
		{C1: 0.4},
	}
	for i := 0; i < 10; i++ {
		points = append(points, chamberPoint(rng, 0.005), chamberPoint(rng, 0.02))
	}

	for _, c := range points {
		u := scrambled(rng, c)
		out, err := chi(propagate(t, u, basis))
		require.NoError(t, err)
		a, err := gate.FromStates(basis, out)
		require.NoError(t, err)
		require.Greater(t, a.Norm(), 0.0, "at %v", c)

		before := objective(t, s)(u)
		after := objective(t, s)(u.Add(a.Scale(complex(1e-4/a.Norm(), 0))))
		assert.Less(t, before, 0.0, "at %v", c)
		assert.Greater(t, after, before, "distance at %v", c)
	}
}

// TestChi_MatchesFiniteDifferences compares the analytic chi with central
// differences of Objective, with and without the unitarity term.
func TestChi_MatchesFiniteDifferences(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	toward, err := krotov.TowardGate(gate.CNOT)
	require.NoError(t, err)
	assert.Equal(t, weyl.LocalInvariants{G3: 1}, toward.Target)

	cases := []struct {
		s krotov.Strategy
		w float64
	}{
		{krotov.NearestByInvariants{}, 0},
		{krotov.NearestByInvariants{}, 0.1},
		{toward, 0},
		{toward, 0.3},
		{krotov.NearestByCoordinates{}, 0.1},
	}
	for _, tc := range cases {
		u := scrambled(rng, weyl.Coordinates{C1: 0.3, C2: 0.1, C3: 0.05})
		opts := []krotov.Option{krotov.WithUnitarityWeight(tc.w)}
		chi, err := krotov.NewChiConstructor(basis, tc.s, opts...)
		require.NoError(t, err)
		out, err := chi(propagate(t, u, basis))
		require.NoError(t, err)
		a, err := gate.FromStates(basis, out)
		require.NoError(t, err)

		want := fdWirtinger(t, objective(t, tc.s, opts...), u, 1e-6)
		assert.True(t, a.AllClose(want, 1e-6), "%v (w=%v):\n got %v\nwant %v", tc.s, tc.w, a, want)
	}
}

// TestChi_EmbeddedBasis runs on a five-level space with leakage.
func TestChi_EmbeddedBasis(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	basis5, err := gate.CanonicalBasis(5)
	require.NoError(t, err)
	basis4, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)

	u := scrambled(rng, weyl.Coordinates{C1: 0.2, C2: 0.1, C3: 0.05}).Scale(0.95)
	fw5 := propagate(t, u, basis5)
	fw4 := propagate(t, u, basis4)
	for k := range fw5 {
		fw5[k][4] = complex(0.1, 0.05*float64(k))
	}

	opts := []krotov.Option{krotov.WithUnitarityWeight(0.1)}
	chi5, err := krotov.NewChiConstructor(basis5, krotov.NearestByInvariants{}, opts...)
	require.NoError(t, err)
	chi4, err := krotov.NewChiConstructor(basis4, krotov.NearestByInvariants{}, opts...)
	require.NoError(t, err)

	out5, err := chi5(fw5)
	require.NoError(t, err)
	out4, err := chi4(fw4)
	require.NoError(t, err)
	for k := range out5 {
		require.Len(t, out5[k], 5)
		assert.Equal(t, complex128(0), out5[k][4], "no component outside the logical subspace")
		for l := 0; l < gate.Dim; l++ {
			assert.InDelta(t, real(out4[k][l]), real(out5[k][l]), 1e-14)
			assert.InDelta(t, imag(out4[k][l]), imag(out5[k][l]), 1e-14)
		}
	}
}

// TestChi_Stateless checks repeat calls, ignored auxiliary arguments and
// isolation from later changes to the caller's basis.
func TestChi_Stateless(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	chi, err := krotov.NewChiConstructor(basis, krotov.NearestByInvariants{})
	require.NoError(t, err)

	fw := propagate(t, scrambled(rng, ascentPoints[0]), basis)
	first, err := chi(fw)
	require.NoError(t, err)

	basis[0][0] = 7
	other, err := chi(propagate(t, gate.SWAP, []gate.Ket{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	again, err := chi(fw, "tau", 0.5, map[string]any{"shape": nil})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// TestChi_TowardTarget checks that TowardInvariants vanishes on the target
// class and not elsewhere, including at perfect entanglers.
func TestChi_TowardTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	s, err := krotov.TowardGate(gate.SqrtISWAP)
	require.NoError(t, err)
	chi, err := krotov.NewChiConstructor(basis, s)
	require.NoError(t, err)

	at, err := chi(propagate(t, randomLocal(rng).Mul(gate.SqrtISWAP).Mul(randomLocal(rng)), basis))
	require.NoError(t, err)
	a, err := gate.FromStates(basis, at)
	require.NoError(t, err)
	assert.Less(t, a.Norm(), 1e-7)

	off, err := chi(propagate(t, gate.BGate, basis))
	require.NoError(t, err)
	a, err = gate.FromStates(basis, off)
	require.NoError(t, err)
	assert.Greater(t, a.Norm(), 0.1)
}

// TestChi_Errors covers construction and call errors.
func TestChi_Errors(t *testing.T) {
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	s := krotov.NearestByInvariants{}

	_, err = krotov.NewChiConstructor(basis, nil)
	assert.True(t, errors.Is(err, krotov.ErrNilStrategy), "got %v", err)
	_, err = krotov.NewChiConstructor(basis[:3], s)
	assert.True(t, errors.Is(err, krotov.ErrBasisSize), "got %v", err)
	short := []gate.Ket{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}
	_, err = krotov.NewChiConstructor(short, s)
	assert.True(t, errors.Is(err, krotov.ErrStateDimension), "got %v", err)
	ragged := []gate.Ket{basis[0], basis[1], basis[2], {0, 0, 0, 1, 0}}
	_, err = krotov.NewChiConstructor(ragged, s)
	assert.True(t, errors.Is(err, krotov.ErrStateDimension), "got %v", err)

	chi, err := krotov.NewChiConstructor(basis, s)
	require.NoError(t, err)
	_, err = chi(basis[:2])
	assert.True(t, errors.Is(err, krotov.ErrBasisSize), "got %v", err)
	basis5, err := gate.CanonicalBasis(5)
	require.NoError(t, err)
	_, err = chi(basis5)
	assert.True(t, errors.Is(err, krotov.ErrStateDimension), "got %v", err)

	zero := []gate.Ket{make(gate.Ket, 4), make(gate.Ket, 4), make(gate.Ket, 4), make(gate.Ket, 4)}
	for _, st := range []krotov.Strategy{s, krotov.TowardInvariants{}} {
		c, err := krotov.NewChiConstructor(basis, st)
		require.NoError(t, err)
		_, err = c(zero)
		assert.True(t, errors.Is(err, weyl.ErrNumericalDegeneracy), "%v: got %v", st, err)
	}
	c, err := krotov.NewChiConstructor(basis, krotov.NearestByCoordinates{})
	require.NoError(t, err)
	_, err = c(zero)
	assert.True(t, errors.Is(err, gate.ErrSingular), "got %v", err)

	_, err = krotov.Objective(gate.CNOT, nil)
	assert.True(t, errors.Is(err, krotov.ErrNilStrategy), "got %v", err)
}

// TestChi_Logs checks the per-call Debug record.
func TestChi_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	basis, err := gate.CanonicalBasis(gate.Dim)
	require.NoError(t, err)
	chi, err := krotov.NewChiConstructor(basis, krotov.NearestByInvariants{}, krotov.WithLogger(logger))
	require.NoError(t, err)

	_, err = chi(propagate(t, gate.CNOT, basis))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "strategy=nearest-invariants")
	assert.Contains(t, buf.String(), "satisfied=true")
}

// TestObjective pins values at the standard gates.
func TestObjective(t *testing.T) {
	d, err := krotov.Objective(gate.Identity, krotov.NearestByCoordinates{})
	require.NoError(t, err)
	assert.InDelta(t, -math.Sqrt2/4, d, 1e-12)

	d, err = krotov.Objective(gate.Identity, krotov.NearestByInvariants{})
	require.NoError(t, err)
	assert.InDelta(t, -2, d, 1e-12)

	d, err = krotov.Objective(gate.CNOT.Scale(2), krotov.NearestByInvariants{}, krotov.WithUnitarityWeight(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5*(4-1), d, 1e-12, "non-unitary gates only move the unitarity term")
}

// TestModes covers name resolution and the strategy factory.
func TestModes(t *testing.T) {
	for _, name := range []string{"coordinates", "invariants"} {
		m, err := krotov.ModeFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
		_, err = krotov.NewStrategy(m)
		require.NoError(t, err)
	}
	s, err := krotov.NewStrategy(krotov.ModeCoordinates)
	require.NoError(t, err)
	assert.Equal(t, krotov.NearestByCoordinates{}, s)

	_, err = krotov.ModeFromString("nearest")
	assert.True(t, errors.Is(err, krotov.ErrUnknownMode))
	_, err = krotov.NewStrategy(krotov.Mode(7))
	assert.True(t, errors.Is(err, krotov.ErrUnknownMode))
	assert.Equal(t, "unknown", krotov.Mode(7).String())
}

// TestOptions_PanicsOnInvalid checks the option constructors.
func TestOptions_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { krotov.WithUnitarityWeight(1) })
	assert.Panics(t, func() { krotov.WithUnitarityWeight(-0.1) })
	assert.Panics(t, func() { krotov.WithUnitarityWeight(math.NaN()) })
	assert.Panics(t, func() { krotov.WithStep(0) })
	assert.Panics(t, func() { krotov.WithStep(math.Inf(1)) })
	assert.NotPanics(t, func() { krotov.WithUnitarityWeight(0) })
}
