// SPDX-License-Identifier: MIT

package weyl

import (
	"log/slog"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/weylchamber/gate"
)

// Invariants returns the local invariants (g1, g2, g3) of g.
//
// Implementation:
//   - Stage 1: validate unitarity (unless WithoutUnitarityCheck).
//   - Stage 2: B = Q†·g·Q (magic basis), d = det B, m = Bᵀ·B.
//   - Stage 3: g1 + i·g2 = tr(m)²/(16·d), g3 = Re[(tr(m)² − tr(m²))/(4·d)].
//
// Behavior highlights:
//   - Dividing by det B is the unit-determinant normalization: rescaling g
//     by any phase λ multiplies tr(m)², tr(m²) and d by λ⁴.
//   - Only traces and the determinant enter; the result is a symmetric
//     function of the eigenvalues of m and never depends on their order.
//
// Errors:
//   - gate.ErrInvalidGate (wrapped) on a failed unitarity check.
//   - ErrNumericalDegeneracy (wrapped) if det B is exactly zero; a merely
//     small |det B| only raises an advisory.
//
// Complexity:
//   - O(1): a handful of 4×4 products.
func Invariants(g gate.Gate, opts ...Option) (LocalInvariants, error) {
	o := gatherOptions(opts...)
	li, err := rawInvariants(g, &o, opInvariants)
	if err != nil {
		return LocalInvariants{}, err
	}

	return o.roundInvariants(li), nil
}

// InvariantsFromCoordinates evaluates the closed-form invariants of the
// canonical gate at c (units of π), with aₖ = π·cₖ:
//
//	g1 = Π cos²aₖ − Π sin²aₖ
//	g2 = ¼ · Π sin 2aₖ
//	g3 = 4·g1 − Π cos 2aₖ
func InvariantsFromCoordinates(c Coordinates, opts ...Option) LocalInvariants {
	o := gatherOptions(opts...)

	return o.roundInvariants(invariantsFromCoordinates(c))
}

func invariantsFromCoordinates(c Coordinates) LocalInvariants {
	var (
		r          = c.Radians()
		s1, co1    = math.Sincos(r.C1)
		s2, co2    = math.Sincos(r.C2)
		s3, co3    = math.Sincos(r.C3)
		g1, g2, g3 float64
	)
	g1 = co1*co1*co2*co2*co3*co3 - s1*s1*s2*s2*s3*s3
	g2 = 0.25 * math.Sin(2*r.C1) * math.Sin(2*r.C2) * math.Sin(2*r.C3)
	g3 = 4*g1 - math.Cos(2*r.C1)*math.Cos(2*r.C2)*math.Cos(2*r.C3)

	return LocalInvariants{G1: g1, G2: g2, G3: g3}
}

// rawInvariants computes unrounded invariants under o.
func rawInvariants(g gate.Gate, o *Options, op string) (LocalInvariants, error) {
	if err := o.checkGate(g, op); err != nil {
		return LocalInvariants{}, err
	}
	ub := gate.ToMagic(g)
	d, err := o.normalization(ub, op)
	if err != nil {
		return LocalInvariants{}, err
	}
	g1c, g3c := magicInvariants(ub, d)

	return LocalInvariants{G1: real(g1c), G2: imag(g1c), G3: real(g3c)}, nil
}

// magicInvariants returns G1 = tr(m)²/(16d) and G3 = (tr(m)² − tr(m²))/(4d)
// for a gate ub in the magic basis.
func magicInvariants(ub gate.Gate, d complex128) (complex128, complex128) {
	m := ub.Transpose().Mul(ub)
	t := m.Trace()
	s := m.Mul(m).Trace()

	return t * t / (16 * d), (t*t - s) / (4 * d)
}

// checkGate applies the configured input validation.
func (o *Options) checkGate(g gate.Gate, op string) error {
	if o.checkUnitarity {
		if err := gate.ValidateUnitary(g, gate.WithTolerance(o.unitarityTol)); err != nil {
			return weylErrorf(op, err)
		}

		return nil
	}
	if !g.IsFinite() {
		return weylErrorf(op, gate.ErrInvalidGate)
	}

	return nil
}

// normalization returns det(ub), advising on |det| below the degeneracy
// tolerance and failing on an exactly singular gate.
func (o *Options) normalization(ub gate.Gate, op string) (complex128, error) {
	d := ub.Det()
	ad := cmplx.Abs(d)
	if ad == 0 || math.IsNaN(ad) {
		return 0, weylErrorf(op, ErrNumericalDegeneracy)
	}
	if ad < o.degeneracyTol {
		o.advise(op, ErrNumericalDegeneracy, slog.Float64("abs_det", ad))
	}

	return d, nil
}

func (o *Options) roundInvariants(li LocalInvariants) LocalInvariants {
	return LocalInvariants{G1: o.round(li.G1), G2: o.round(li.G2), G3: o.round(li.G3)}
}

// Jacobian holds the holomorphic derivatives of the complex invariants
// G1 = g1 + i·g2 and G3 (g3 = Re G3) with respect to the entries of a gate
// in the canonical basis, together with the unrounded invariants.
type Jacobian struct {
	Invariants LocalInvariants
	DG1        gate.Gate // ∂G1/∂U[i][j]
	DG3        gate.Gate // ∂G3/∂U[i][j]
}

// InvariantJacobian differentiates the invariants of u analytically.
// In the magic basis B, with T = tr m, S = tr m², d = det B:
//
//	∂G1/∂B = T·(4B − T·B⁻ᵀ)/(16d)
//	∂G3/∂B = (4T·B − 4B·m − (T² − S)·B⁻ᵀ)/(4d)
//
// and the chain rule through B = Q†·U·Q gives ∂G/∂U = conj(Q)·(∂G/∂B)·Qᵀ.
// u need not be unitary; the unitarity check follows opts as for
// Invariants. Results are never rounded.
//
// Errors:
//   - gate.ErrInvalidGate (wrapped) on a failed check.
//   - ErrNumericalDegeneracy (wrapped) if u is singular.
func InvariantJacobian(u gate.Gate, opts ...Option) (Jacobian, error) {
	o := gatherOptions(opts...)
	if err := o.checkGate(u, opJacobian); err != nil {
		return Jacobian{}, err
	}
	ub := gate.ToMagic(u)
	d, err := o.normalization(ub, opJacobian)
	if err != nil {
		return Jacobian{}, err
	}
	inv, err := ub.Inverse()
	if err != nil {
		return Jacobian{}, weylErrorf(opJacobian, ErrNumericalDegeneracy)
	}

	var (
		invT = inv.Transpose()
		m    = ub.Transpose().Mul(ub)
		bm   = ub.Mul(m)
		t    = m.Trace()
		s    = m.Mul(m).Trace()
		dg1  gate.Gate
		dg3  gate.Gate
	)
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			dg1[i][j] = t * (4*ub[i][j] - t*invT[i][j]) / (16 * d)
			dg3[i][j] = (4*t*ub[i][j] - 4*bm[i][j] - (t*t-s)*invT[i][j]) / (4 * d)
		}
	}
	g1c, g3c := t*t/(16*d), (t*t-s)/(4*d)

	qc, qt := gate.Magic.Conj(), gate.Magic.Transpose()

	return Jacobian{
		Invariants: LocalInvariants{G1: real(g1c), G2: imag(g1c), G3: real(g3c)},
		DG1:        qc.Mul(dg1).Mul(qt),
		DG3:        qc.Mul(dg3).Mul(qt),
	}, nil
}

// Wirtinger returns ∂f/∂conj(U) for a real function f(g1, g2, g3) whose
// partial derivatives at the current invariants are df1, df2, df3:
//
//	∂f/∂conj(U) = ½·[(df1 + i·df2)·conj(∂G1/∂U) + df3·conj(∂G3/∂U)]
//
// Moving U along this matrix increases f at the fastest rate.
func (j Jacobian) Wirtinger(df1, df2, df3 float64) gate.Gate {
	var (
		a  gate.Gate
		w1 = complex(df1, df2)
		w3 = complex(df3, 0)
	)
	for r := 0; r < gate.Dim; r++ {
		for c := 0; c < gate.Dim; c++ {
			a[r][c] = (w1*cmplx.Conj(j.DG1[r][c]) + w3*cmplx.Conj(j.DG3[r][c])) / 2
		}
	}

	return a
}
