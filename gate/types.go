// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Dim is the Hilbert-space dimension of a two-qubit gate.
const Dim = 4

// Operation name constants for unified error wrapping.
const (
	opInverse        = "Inverse"
	opValidate       = "ValidateUnitary"
	opMagicTransform = "MagicTransform"
	opFromStates     = "FromStates"
	opMappedBasis    = "MappedBasis"
	opBellBasis      = "BellBasis"
	opUnitarize      = "Unitarize"
)

// gateErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func gateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Gate is a two-qubit operator in the canonical basis |00⟩,|01⟩,|10⟩,|11⟩.
// Row index first: g[i][j] = ⟨i|G|j⟩.
type Gate [Dim][Dim]complex128

// Ket is a state vector. Kets used as basis states for a Gate may live in a
// space larger than four dimensions (leakage levels); all kets of one basis
// must share the same length.
type Ket []complex128

// Diag returns the diagonal gate diag(d0, d1, d2, d3).
func Diag(d [Dim]complex128) Gate {
	var g Gate
	for i := 0; i < Dim; i++ {
		g[i][i] = d[i]
	}

	return g
}

// Mul returns g·h.
func (g Gate) Mul(h Gate) Gate {
	var (
		out  Gate
		i, j int
		k    int
		acc  complex128
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			acc = 0
			for k = 0; k < Dim; k++ {
				acc += g[i][k] * h[k][j]
			}
			out[i][j] = acc
		}
	}

	return out
}

// Add returns g + h.
func (g Gate) Add(h Gate) Gate {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			g[i][j] += h[i][j]
		}
	}

	return g
}

// Sub returns g − h.
func (g Gate) Sub(h Gate) Gate {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			g[i][j] -= h[i][j]
		}
	}

	return g
}

// Scale returns s·g.
func (g Gate) Scale(s complex128) Gate {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			g[i][j] *= s
		}
	}

	return g
}

// Transpose returns gᵀ.
func (g Gate) Transpose() Gate {
	var out Gate
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[j][i] = g[i][j]
		}
	}

	return out
}

// Conj returns the element-wise complex conjugate of g.
func (g Gate) Conj() Gate {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			g[i][j] = cmplx.Conj(g[i][j])
		}
	}

	return g
}

// Dagger returns the conjugate transpose g†.
func (g Gate) Dagger() Gate { return g.Transpose().Conj() }

// Trace returns tr(g).
func (g Gate) Trace() complex128 {
	return g[0][0] + g[1][1] + g[2][2] + g[3][3]
}

// Det returns det(g) by Gaussian elimination with partial pivoting.
// A singular matrix yields 0.
func (g Gate) Det() complex128 {
	var (
		a    = g
		det  = complex(1, 0)
		k, i int
		j, p int
		f    complex128
	)
	for k = 0; k < Dim; k++ {
		p = k
		for i = k + 1; i < Dim; i++ {
			if cmplx.Abs(a[i][k]) > cmplx.Abs(a[p][k]) {
				p = i
			}
		}
		if a[p][k] == 0 {
			return 0
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			det = -det
		}
		det *= a[k][k]
		for i = k + 1; i < Dim; i++ {
			f = a[i][k] / a[k][k]
			for j = k; j < Dim; j++ {
				a[i][j] -= f * a[k][j]
			}
		}
	}

	return det
}

// Inverse returns g⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Errors:
//   - ErrSingular (wrapped with "Inverse") if a pivot is exactly zero.
func (g Gate) Inverse() (Gate, error) {
	var (
		a, inv Gate
		k, i   int
		j, p   int
		pv, f  complex128
	)
	a = g
	inv = Identity
	for k = 0; k < Dim; k++ {
		p = k
		for i = k + 1; i < Dim; i++ {
			if cmplx.Abs(a[i][k]) > cmplx.Abs(a[p][k]) {
				p = i
			}
		}
		if a[p][k] == 0 {
			return Gate{}, gateErrorf(opInverse, ErrSingular)
		}
		a[p], a[k] = a[k], a[p]
		inv[p], inv[k] = inv[k], inv[p]

		pv = a[k][k]
		for j = 0; j < Dim; j++ {
			a[k][j] /= pv
			inv[k][j] /= pv
		}
		for i = 0; i < Dim; i++ {
			if i == k {
				continue
			}
			f = a[i][k]
			if f == 0 {
				continue
			}
			for j = 0; j < Dim; j++ {
				a[i][j] -= f * a[k][j]
				inv[i][j] -= f * inv[k][j]
			}
		}
	}

	return inv, nil
}

// Norm returns the Frobenius norm ‖g‖_F.
func (g Gate) Norm() float64 {
	var s float64
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			re, im := real(g[i][j]), imag(g[i][j])
			s += re*re + im*im
		}
	}

	return math.Sqrt(s)
}

// AllClose reports whether every entry of g and h differs by at most tol.
func (g Gate) AllClose(h Gate, tol float64) bool {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if cmplx.Abs(g[i][j]-h[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// IsFinite reports whether no entry of g is NaN or ±Inf.
func (g Gate) IsFinite() bool {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if cmplx.IsNaN(g[i][j]) || cmplx.IsInf(g[i][j]) {
				return false
			}
		}
	}

	return true
}

// Apply returns g·ψ for a four-dimensional ket.
//
// Errors:
//   - ErrDimensionMismatch if len(psi) != 4.
func (g Gate) Apply(psi Ket) (Ket, error) {
	if len(psi) != Dim {
		return nil, ErrDimensionMismatch
	}
	out := make(Ket, Dim)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[i] += g[i][j] * psi[j]
		}
	}

	return out, nil
}

// String formats g row by row with four significant decimals.
func (g Gate) String() string {
	var s string
	for i := 0; i < Dim; i++ {
		s += fmt.Sprintf("[% .4f % .4f % .4f % .4f]", g[i][0], g[i][1], g[i][2], g[i][3])
		if i < Dim-1 {
			s += "\n"
		}
	}

	return s
}
