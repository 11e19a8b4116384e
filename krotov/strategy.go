// SPDX-License-Identifier: MIT

package krotov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/weylchamber/entangler"
	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

// Operation name constants for unified error wrapping.
const (
	opNewChi       = "NewChiConstructor"
	opChi          = "ChiConstructor"
	opObjective    = "Objective"
	opModeFromName = "ModeFromString"
	opNewStrategy  = "NewStrategy"
	opTowardGate   = "TowardGate"
)

func krotovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Strategy selects the functional Φ(U) that a chi constructor ascends.
// The set is closed: NearestByCoordinates, NearestByInvariants and
// TowardInvariants.
type Strategy interface {
	fmt.Stringer

	// objective returns Φ(u).
	objective(u gate.Gate, o *Options) (float64, error)

	// gradient returns ∂Φ/∂conj(U), or done = true with a zero matrix when
	// u already meets the target.
	gradient(u gate.Gate, o *Options) (a gate.Gate, done bool, err error)
}

// NearestByCoordinates ascends the signed coordinate distance to the
// perfect-entangler polyhedron (entangler.Distance) of the achieved gate.
// Coordinates are read from the eigenphases of the unitary polar factor
// U·(U†U)^(−½) (gate.Unitarize), so they stay defined and well conditioned
// for the non-unitary gates a propagation produces. The gradient is a central finite difference over the
// 32 real parameters of U; the facet-wise linear distance makes it
// piecewise smooth, with ties on edges resolved by facet order.
type NearestByCoordinates struct{}

// String implements fmt.Stringer.
func (NearestByCoordinates) String() string { return "nearest-coordinates" }

func (NearestByCoordinates) objective(u gate.Gate, o *Options) (float64, error) {
	w, err := gate.Unitarize(u)
	if err != nil {
		return 0, err
	}
	c, err := weyl.FromGate(w, o.weylOpts...)
	if err != nil {
		return 0, err
	}

	return entangler.Distance(c, o.entOpts...), nil
}

func (s NearestByCoordinates) gradient(u gate.Gate, o *Options) (gate.Gate, bool, error) {
	d, err := s.objective(u, o)
	if err != nil {
		return gate.Gate{}, false, err
	}
	if d >= 0 {
		return gate.Gate{}, true, nil
	}

	var ferr error
	f := func(x []float64) float64 {
		v, err := s.objective(fromReals(x), o)
		if err != nil {
			if ferr == nil {
				ferr = err
			}

			return math.NaN()
		}

		return v
	}
	grad := fd.Gradient(nil, f, toReals(u), &fd.Settings{Formula: fd.Central, Step: o.step})
	if ferr != nil {
		return gate.Gate{}, false, ferr
	}

	return fromRealGradient(grad), false, nil
}

// NearestByInvariants ascends Φ = −sign(g3)·F_PE, which is negative outside
// the perfect-entangler set and vanishes on its boundary. The gradient is
// analytic, via weyl.InvariantJacobian:
//
//	∂Φ/∂(g1, g2, g3) = −sign(g3)·(g3·g1/r − 1, g3·g2/r, r),  r = |g1 + i·g2|
//
// Outside the set r > 0, so the expression is always defined where used.
// The invariants are stationary at local gates and at SWAP, where the
// returned chi vanishes although the target is not met.
type NearestByInvariants struct{}

// String implements fmt.Stringer.
func (NearestByInvariants) String() string { return "nearest-invariants" }

func (NearestByInvariants) objective(u gate.Gate, o *Options) (float64, error) {
	li, err := weyl.Invariants(u, o.weylOpts...)
	if err != nil {
		return 0, err
	}

	return -math.Copysign(1, li.G3) * entangler.FPE(li), nil
}

func (NearestByInvariants) gradient(u gate.Gate, o *Options) (gate.Gate, bool, error) {
	jac, err := weyl.InvariantJacobian(u, o.weylOpts...)
	if err != nil {
		return gate.Gate{}, false, err
	}
	li := jac.Invariants
	if entangler.IsPerfectEntanglerInvariants(li, o.entOpts...) {
		return gate.Gate{}, true, nil
	}
	var (
		r  = li.Modulus()
		sg = -math.Copysign(1, li.G3)
	)

	return jac.Wirtinger(sg*(li.G3*li.G1/r-1), sg*li.G3*li.G2/r, sg*r), false, nil
}

// TowardInvariants ascends Φ = −Σ (gₖ(U) − gₖ(Target))², i.e. minimizes the
// local-invariants functional toward a fixed class. It is never satisfied by
// perfect-entangler membership; its gradient vanishes only where the
// invariants match.
type TowardInvariants struct {
	Target weyl.LocalInvariants
}

// TowardGate returns the TowardInvariants strategy for the class of target.
//
// Errors:
//   - any error of weyl.Invariants on target (wrapped).
func TowardGate(target gate.Gate, opts ...weyl.Option) (TowardInvariants, error) {
	li, err := weyl.Invariants(target, opts...)
	if err != nil {
		return TowardInvariants{}, krotovErrorf(opTowardGate, err)
	}

	return TowardInvariants{Target: li}, nil
}

// String implements fmt.Stringer.
func (t TowardInvariants) String() string { return "toward-invariants" + t.Target.String() }

func (t TowardInvariants) objective(u gate.Gate, o *Options) (float64, error) {
	li, err := weyl.Invariants(u, o.weylOpts...)
	if err != nil {
		return 0, err
	}

	return -li.Sub(t.Target).Norm2(), nil
}

func (t TowardInvariants) gradient(u gate.Gate, o *Options) (gate.Gate, bool, error) {
	jac, err := weyl.InvariantJacobian(u, o.weylOpts...)
	if err != nil {
		return gate.Gate{}, false, err
	}
	d := jac.Invariants.Sub(t.Target)

	return jac.Wirtinger(-2*d.G1, -2*d.G2, -2*d.G3), false, nil
}

// Mode names the strategies that need no parameters, for callers that
// select a strategy by name.
type Mode int

const (
	// ModeCoordinates selects NearestByCoordinates.
	ModeCoordinates Mode = iota

	// ModeInvariants selects NearestByInvariants.
	ModeInvariants
)

var modeNames = [...]string{
	ModeCoordinates: "coordinates",
	ModeInvariants:  "invariants",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}

	return modeNames[m]
}

// ModeFromString resolves "coordinates" or "invariants".
//
// Errors:
//   - ErrUnknownMode (wrapped) for any other name.
func ModeFromString(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", opModeFromName, name, ErrUnknownMode)
}

// NewStrategy returns the strategy selected by m.
//
// Errors:
//   - ErrUnknownMode (wrapped) for an undeclared m.
func NewStrategy(m Mode) (Strategy, error) {
	switch m {
	case ModeCoordinates:
		return NearestByCoordinates{}, nil
	case ModeInvariants:
		return NearestByInvariants{}, nil
	default:
		return nil, krotovErrorf(opNewStrategy, ErrUnknownMode)
	}
}

// toReals flattens u into (Re, Im) pairs, row-major.
func toReals(u gate.Gate) []float64 {
	x := make([]float64, 0, 2*gate.Dim*gate.Dim)
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			x = append(x, real(u[i][j]), imag(u[i][j]))
		}
	}

	return x
}

func fromReals(x []float64) gate.Gate {
	var u gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			k := 2 * (i*gate.Dim + j)
			u[i][j] = complex(x[k], x[k+1])
		}
	}

	return u
}

// fromRealGradient turns ∂Φ/∂(Re, Im) into ∂Φ/∂conj(U) = ½(∂Re + i·∂Im).
func fromRealGradient(g []float64) gate.Gate {
	var a gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			k := 2 * (i*gate.Dim + j)
			a[i][j] = complex(g[k]/2, g[k+1]/2)
		}
	}

	return a
}
