// SPDX-License-Identifier: MIT

package cartan

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opClosest   = "ClosestLocallyEquivalent"
)

func cartanErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// realTolerance bounds max |Im O₁| of the left magic-basis factor.
const realTolerance = 1e-8

// Decomposition is the Cartan (KAK) form u = Phase·K1·A·K2 of a two-qubit
// gate: K1 and K2 are local gates in SU(2)⊗SU(2), A is diagonal in the
// magic basis and locally equivalent to u, and Phase is a fourth root of
// det u.
type Decomposition struct {
	Phase complex128
	K1    gate.Gate
	A     gate.Gate
	K2    gate.Gate
}

// Gate recomposes Phase·K1·A·K2.
func (d Decomposition) Gate() gate.Gate {
	return d.K1.Mul(d.A).Mul(d.K2).Scale(d.Phase)
}

// magicFactors is u = phase·O1·diag(f)·O2 in the magic basis, with O1 and
// O2 real orthogonal of determinant one.
type magicFactors struct {
	phase complex128
	o1    gate.Gate
	f     [gate.Dim]complex128
	o2    gate.Gate
}

// Decompose computes the Cartan decomposition of u.
//
// Implementation:
//   - Stage 1: divide out ph = (det u)^¼ and move to the magic basis, UB.
//   - Stage 2: diagonalize m = UBᵀ·UB with a real orthogonal V
//     (weyl.Diagonalize); fix det V = +1.
//   - Stage 3: F = √diag(Vᵀ·m·V) with the branch of F₀ chosen so that
//     ∏F = 1; then O1 = UB·V·F⁻¹ and O2 = Vᵀ are real orthogonal.
//   - Stage 4: map O1, diag(F) and O2 back to the canonical basis.
//
// Errors:
//   - gate.ErrInvalidGate (wrapped) if u is not unitary.
//   - ErrDecompositionFailed (wrapped) if the factors do not come out real.
func Decompose(u gate.Gate, opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)
	if err := gate.ValidateUnitary(u, gate.WithTolerance(o.unitarityTol)); err != nil {
		return Decomposition{}, cartanErrorf(opDecompose, err)
	}
	mf, err := factorize(u)
	if err != nil {
		return Decomposition{}, cartanErrorf(opDecompose, err)
	}

	return Decomposition{
		Phase: mf.phase,
		K1:    gate.FromMagic(mf.o1),
		A:     gate.FromMagic(gate.Diag(mf.f)),
		K2:    gate.FromMagic(mf.o2),
	}, nil
}

func factorize(u gate.Gate) (magicFactors, error) {
	ph := cmplx.Pow(u.Det(), 0.25)
	if ph == 0 {
		return magicFactors{}, ErrDecompositionFailed
	}
	ub := gate.ToMagic(u.Scale(1 / ph))
	m := ub.Transpose().Mul(ub)
	es, err := weyl.Diagonalize(m)
	if err != nil {
		return magicFactors{}, fmt.Errorf("%w: %w", ErrDecompositionFailed, err)
	}

	v := es.Vectors
	if mat.Det(denseOf(v)) < 0 {
		for i := 0; i < gate.Dim; i++ {
			v[i][0] = -v[i][0]
		}
	}
	vc := complexOf(v)
	d := vc.Transpose().Mul(m).Mul(vc)

	var (
		f, finv [gate.Dim]complex128
		prod    = complex(1, 0)
	)
	for k := 0; k < gate.Dim; k++ {
		f[k] = cmplx.Sqrt(d[k][k])
		prod *= f[k]
	}
	if real(prod) < 0 {
		f[0] = -f[0]
	}
	for k := 0; k < gate.Dim; k++ {
		finv[k] = 1 / f[k]
	}
	o1 := ub.Mul(vc).Mul(gate.Diag(finv))
	if maxImag(o1) > realTolerance {
		return magicFactors{}, ErrDecompositionFailed
	}

	return magicFactors{phase: ph, o1: o1, f: f, o2: vc.Transpose()}, nil
}

// denseOf copies a real 4×4 array into a gonum matrix.
func denseOf(a [gate.Dim][gate.Dim]float64) *mat.Dense {
	data := make([]float64, 0, gate.Dim*gate.Dim)
	for i := 0; i < gate.Dim; i++ {
		data = append(data, a[i][:]...)
	}

	return mat.NewDense(gate.Dim, gate.Dim, data)
}

// realDense returns Re g as a gonum matrix.
func realDense(g gate.Gate) *mat.Dense {
	var a [gate.Dim][gate.Dim]float64
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			a[i][j] = real(g[i][j])
		}
	}

	return denseOf(a)
}

func complexOf(a [gate.Dim][gate.Dim]float64) gate.Gate {
	var g gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			g[i][j] = complex(a[i][j], 0)
		}
	}

	return g
}

func complexOfDense(m mat.Matrix) gate.Gate {
	var g gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			g[i][j] = complex(m.At(i, j), 0)
		}
	}

	return g
}

func maxImag(g gate.Gate) float64 {
	var worst float64
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			worst = math.Max(worst, math.Abs(imag(g[i][j])))
		}
	}

	return worst
}
