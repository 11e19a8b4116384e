// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"math/cmplx"
)

// Inner returns ⟨a|b⟩ = Σ conj(aᵢ)·bᵢ. Lengths must match; the caller
// checks them.
func Inner(a, b Ket) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}

	return s
}

// CanonicalBasis returns |00⟩, |01⟩, |10⟩, |11⟩ embedded as the first four
// levels of a dim-dimensional space.
//
// Errors:
//   - ErrDimensionMismatch if dim < 4.
func CanonicalBasis(dim int) ([]Ket, error) {
	if dim < Dim {
		return nil, fmt.Errorf("CanonicalBasis: dim %d: %w", dim, ErrDimensionMismatch)
	}
	basis := make([]Ket, Dim)
	for k := 0; k < Dim; k++ {
		basis[k] = make(Ket, dim)
		basis[k][k] = 1
	}

	return basis, nil
}

// validateBasis checks that there are exactly four kets of equal, non-zero
// length and returns that length.
func validateBasis(basis []Ket) (int, error) {
	if len(basis) != Dim {
		return 0, ErrDimensionMismatch
	}
	n := len(basis[0])
	if n == 0 {
		return 0, ErrDimensionMismatch
	}
	for _, k := range basis[1:] {
		if len(k) != n {
			return 0, ErrDimensionMismatch
		}
	}

	return n, nil
}

// MappedBasis returns the images of basis under g: statesⱼ = Σᵢ g[i][j]·basisᵢ.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "MappedBasis") unless basis holds
//     four kets of equal length.
func MappedBasis(g Gate, basis []Ket) ([]Ket, error) {
	n, err := validateBasis(basis)
	if err != nil {
		return nil, gateErrorf(opMappedBasis, err)
	}
	states := make([]Ket, Dim)
	for j := 0; j < Dim; j++ {
		states[j] = make(Ket, n)
		for i := 0; i < Dim; i++ {
			if g[i][j] == 0 {
				continue
			}
			for l := 0; l < n; l++ {
				states[j][l] += g[i][j] * basis[i][l]
			}
		}
	}

	return states, nil
}

// BellBasis returns the magic Bell basis associated with a canonical basis,
// i.e. MappedBasis(Magic, canonical):
//
//	(|00⟩ + |11⟩)/√2, i(|01⟩ + |10⟩)/√2, (|01⟩ − |10⟩)/√2, i(|00⟩ − |11⟩)/√2
func BellBasis(canonical []Ket) ([]Ket, error) {
	states, err := MappedBasis(Magic, canonical)
	if err != nil {
		return nil, gateErrorf(opBellBasis, err)
	}

	return states, nil
}

// FromStates returns the gate that maps basis onto states, projected onto
// the span of basis: U[i][j] = ⟨basisᵢ|statesⱼ⟩. For propagated states with
// leakage the result is not unitary.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "FromStates") unless basis and
//     states each hold four kets of one common length.
func FromStates(basis, states []Ket) (Gate, error) {
	nb, err := validateBasis(basis)
	if err != nil {
		return Gate{}, gateErrorf(opFromStates, err)
	}
	ns, err := validateBasis(states)
	if err != nil {
		return Gate{}, gateErrorf(opFromStates, err)
	}
	if nb != ns {
		return Gate{}, gateErrorf(opFromStates, ErrDimensionMismatch)
	}

	var u Gate
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			u[i][j] = Inner(basis[i], states[j])
		}
	}

	return u, nil
}
