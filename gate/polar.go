// SPDX-License-Identifier: MIT

package gate

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// polarSingularTolerance bounds the smallest eigenvalue of g†g relative to
// the largest; below it g is treated as singular.
const polarSingularTolerance = 1e-14

// Unitarize returns the unitary polar factor g·(g†g)^(−½), the unitary
// closest to g in Frobenius norm. Unitary gates are returned unchanged up to
// round-off; for g with leakage it is the gate restricted to the logical
// subspace, with the loss of norm removed.
//
// Implementation:
//   - g†g = A + i·B is embedded as the real symmetric [[A, −B], [B, A]],
//     diagonalized with gonum mat.EigenSym.
//   - (g†g)^(−½) is read off the top-left (real) and bottom-left
//     (imaginary) blocks of V·diag(λ^(−½))·Vᵀ.
//
// Errors:
//   - ErrSingular (wrapped with "Unitarize") if g†g is singular within
//     tolerance, or the eigensolver fails.
func Unitarize(g Gate) (Gate, error) {
	const n = 2 * Dim
	h := g.Dagger().Mul(g)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			sym.SetSym(i, j, real(h[i][j]))
			sym.SetSym(i+Dim, j+Dim, real(h[i][j]))
			sym.SetSym(i+Dim, j, imag(h[i][j]))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Gate{}, gateErrorf(opUnitarize, ErrSingular)
	}
	vals := es.Values(nil)
	var largest float64
	for _, v := range vals {
		largest = math.Max(largest, v)
	}
	if largest == 0 || math.IsNaN(largest) {
		return Gate{}, gateErrorf(opUnitarize, ErrSingular)
	}
	scale := make([]float64, n)
	for k, v := range vals {
		if math.IsNaN(v) || v <= polarSingularTolerance*largest {
			return Gate{}, gateErrorf(opUnitarize, ErrSingular)
		}
		scale[k] = 1 / math.Sqrt(v)
	}

	var vecs, scaled, root mat.Dense
	es.VectorsTo(&vecs)
	scaled.Mul(&vecs, mat.NewDiagDense(n, scale))
	root.Mul(&scaled, vecs.T())

	var inv Gate
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			inv[i][j] = complex(root.At(i, j), root.At(i+Dim, j))
		}
	}

	return g.Mul(inv), nil
}
