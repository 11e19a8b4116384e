// SPDX-License-Identifier: MIT

package weyl

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/gate"
)

// mixingCoefficients are the t values tried for A + t·B, in order. Generic
// irrational values keep accidental eigenvalue collisions of the mixture
// away from genuine degeneracies of m.
var mixingCoefficients = [...]float64{
	0.5772156649015329,  // γ
	1.618033988749895,   // φ
	-0.7071067811865476, // −1/√2
	2.718281828459045,   // e
}

// offDiagonalTolerance bounds max |(Vᵀ·m·V)ᵢⱼ|, i ≠ j, relative to ‖m‖_F.
const offDiagonalTolerance = 1e-8

// Eigensystem is the simultaneous eigendecomposition m = V·diag(Values)·Vᵀ
// of a complex symmetric matrix m whose real and imaginary parts commute,
// with V real orthogonal. For m = Bᵀ·B, B unitary, this is always the case.
type Eigensystem struct {
	Values  [gate.Dim]complex128
	Vectors [gate.Dim][gate.Dim]float64 // column k is the eigenvector of Values[k]
}

// Diagonalize computes the Eigensystem of m.
//
// Implementation:
//   - Stage 1: split m = A + i·B into commuting real symmetric parts.
//   - Stage 2: for each mixing coefficient t, diagonalize A + t·B with the
//     symmetric eigensolver (gonum mat.EigenSym).
//   - Stage 3: accept V when Vᵀ·m·V is diagonal within tolerance; otherwise
//     an accidental degeneracy of A + t·B mixed eigenvectors, try the next t.
//
// Behavior highlights:
//   - Real symmetric solver only: no complex eigenproblem, no ordering of
//     eigenvectors is relied on.
//
// Errors:
//   - ErrEigenFailed (wrapped) when no t yields a diagonal Vᵀ·m·V.
func Diagonalize(m gate.Gate) (Eigensystem, error) {
	var (
		es    mat.EigenSym
		vecs  mat.Dense
		scale = math.Max(1, m.Norm())
	)
	for _, t := range mixingCoefficients {
		data := make([]float64, gate.Dim*gate.Dim)
		for i := 0; i < gate.Dim; i++ {
			for j := 0; j < gate.Dim; j++ {
				aij := real(m[i][j]) + t*imag(m[i][j])
				aji := real(m[j][i]) + t*imag(m[j][i])
				data[i*gate.Dim+j] = 0.5 * (aij + aji)
			}
		}
		if ok := es.Factorize(mat.NewSymDense(gate.Dim, data), true); !ok {
			continue
		}
		es.VectorsTo(&vecs)

		var v [gate.Dim][gate.Dim]float64
		for i := 0; i < gate.Dim; i++ {
			for j := 0; j < gate.Dim; j++ {
				v[i][j] = vecs.At(i, j)
			}
		}
		d := congruence(v, m)
		if maxOffDiagonal(d) > offDiagonalTolerance*scale {
			continue
		}

		out := Eigensystem{Vectors: v}
		for k := 0; k < gate.Dim; k++ {
			out.Values[k] = d[k][k]
		}

		return out, nil
	}

	return Eigensystem{}, weylErrorf(opDiagonalize, ErrEigenFailed)
}

// congruence returns Vᵀ·m·V for real V.
func congruence(v [gate.Dim][gate.Dim]float64, m gate.Gate) gate.Gate {
	var vc gate.Gate
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			vc[i][j] = complex(v[i][j], 0)
		}
	}

	return vc.Transpose().Mul(m).Mul(vc)
}

func maxOffDiagonal(d gate.Gate) float64 {
	var worst float64
	for i := 0; i < gate.Dim; i++ {
		for j := 0; j < gate.Dim; j++ {
			if i != j {
				worst = math.Max(worst, cmplx.Abs(d[i][j]))
			}
		}
	}

	return worst
}
