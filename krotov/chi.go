// SPDX-License-Identifier: MIT

package krotov

import (
	"log/slog"

	"github.com/katalvlaran/weylchamber/gate"
)

// ChiConstructor returns the boundary co-states χₖ for the forward-propagated
// states fw (the images of the logical basis at final time). Auxiliary
// arguments passed by an optimizer are accepted and ignored.
//
// With U[i][k] = ⟨basisᵢ|fwₖ⟩ and A = ∂J/∂conj(U) for the functional J being
// maximized,
//
//	χₖ = Σᵢ A[i][k]·|basisᵢ⟩.
type ChiConstructor func(fw []gate.Ket, aux ...any) ([]gate.Ket, error)

// NewChiConstructor returns a ChiConstructor over basis (four kets of one
// dimension n ≥ 4; the two-qubit space may be embedded in a larger one) that
// ascends
//
//	J = (1 − w)·Φ(U) + w·(tr(U†U)/4 − 1)
//
// for the functional Φ of strategy and the unitarity weight w. When the
// strategy's target is already met (a perfect entangler for the Nearest*
// strategies) the Φ term is zero; with the default w = 0 the returned
// states are then all zero.
//
// The basis is copied; the constructor holds no mutable state and may be
// called repeatedly, or from several goroutines.
//
// Errors:
//   - ErrNilStrategy (wrapped) for a nil strategy.
//   - ErrBasisSize, ErrStateDimension (wrapped) for a malformed basis.
//
// The returned function fails with ErrBasisSize or ErrStateDimension for
// malformed forward states, and with the weyl errors of the achieved gate
// (e.g. weyl.ErrNumericalDegeneracy for a singular U).
func NewChiConstructor(basis []gate.Ket, strategy Strategy, opts ...Option) (ChiConstructor, error) {
	if strategy == nil {
		return nil, krotovErrorf(opNewChi, ErrNilStrategy)
	}
	n, err := checkStates(basis, 0)
	if err != nil {
		return nil, krotovErrorf(opNewChi, err)
	}
	own := make([]gate.Ket, len(basis))
	for k, b := range basis {
		own[k] = append(gate.Ket(nil), b...)
	}
	o := gatherOptions(opts...)

	return func(fw []gate.Ket, _ ...any) ([]gate.Ket, error) {
		if _, err := checkStates(fw, n); err != nil {
			return nil, krotovErrorf(opChi, err)
		}
		u, err := gate.FromStates(own, fw)
		if err != nil {
			return nil, krotovErrorf(opChi, err)
		}
		a, done, err := strategy.gradient(u, &o)
		if err != nil {
			return nil, krotovErrorf(opChi, err)
		}
		if o.weight > 0 {
			a = a.Scale(complex(1-o.weight, 0)).Add(u.Scale(complex(o.weight/4, 0)))
		}
		chi, err := gate.MappedBasis(a, own)
		if err != nil {
			return nil, krotovErrorf(opChi, err)
		}
		o.logger.Debug("chi",
			slog.String("strategy", strategy.String()),
			slog.Bool("satisfied", done),
			slog.Float64("norm", a.Norm()),
		)

		return chi, nil
	}, nil
}

// Objective evaluates J = (1 − w)·Φ(u) + w·(tr(u†u)/4 − 1) for strategy
// under opts, the quantity whose ascent direction a ChiConstructor returns.
// For the Nearest* strategies Φ is negative outside the perfect-entangler
// set; NearestByCoordinates reports the signed distance inside it too.
//
// Errors:
//   - ErrNilStrategy (wrapped) for a nil strategy.
//   - the weyl errors of u (wrapped).
func Objective(u gate.Gate, strategy Strategy, opts ...Option) (float64, error) {
	if strategy == nil {
		return 0, krotovErrorf(opObjective, ErrNilStrategy)
	}
	o := gatherOptions(opts...)
	phi, err := strategy.objective(u, &o)
	if err != nil {
		return 0, krotovErrorf(opObjective, err)
	}
	unitarity := real(u.Dagger().Mul(u).Trace())/gate.Dim - 1

	return (1-o.weight)*phi + o.weight*unitarity, nil
}

// checkStates verifies four kets of one length n ≥ 4 (and equal to want
// when want > 0) and returns n.
func checkStates(kets []gate.Ket, want int) (int, error) {
	if len(kets) != gate.Dim {
		return 0, ErrBasisSize
	}
	n := len(kets[0])
	if n < gate.Dim || (want > 0 && n != want) {
		return 0, ErrStateDimension
	}
	for _, k := range kets[1:] {
		if len(k) != n {
			return 0, ErrStateDimension
		}
	}

	return n, nil
}
