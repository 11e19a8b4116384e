// SPDX-License-Identifier: MIT

// Package gate holds the two-qubit operator primitives shared by every other
// package of weylchamber: the fixed-size Gate value, state kets, the magic
// (Bell) change of basis, standard gates and local single-qubit factors.
//
// 🚀 What is a Gate?
//
//	A Gate is a 4×4 complex matrix acting on two qubits in the canonical
//	product basis |00⟩, |01⟩, |10⟩, |11⟩. It is a plain array value: copies
//	are independent, so a Gate handed to any function is never mutated.
//
// ✨ Key features:
//   - value-type Gate with the usual algebra (Mul, Dagger, Det, Inverse, …)
//   - magic basis Q and the conjugations ToMagic / FromMagic
//   - MagicTransform: validated conjugation (unitarity within ε)
//   - standard gates: CNOT, CZ, SWAP, iSWAP, √iSWAP, √SWAP, B, σ⊗σ
//   - Canonical(c1, c2, c3): exp(iπ/2·(c1·σxσx + c2·σyσy + c3·σzσz))
//   - local gates from single-qubit SU(2) factors
//   - basis helpers: CanonicalBasis, BellBasis, MappedBasis, FromStates
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/weylchamber/gate"
//
//	ub, err := gate.MagicTransform(gate.CNOT, gate.WithTolerance(1e-12))
//	if errors.Is(err, gate.ErrInvalidGate) { ... }
//
// Conventions:
//   - Kron(a, b) = a ⊗ b with the first factor acting on the left qubit.
//   - FromStates(basis, states)[i][j] = ⟨basisᵢ|statesⱼ⟩.
//   - MappedBasis(g, basis)ⱼ = Σᵢ g[i][j]·basisᵢ.
//
// Performance:
//
//   - every kernel works on fixed 4×4 arrays: O(1), allocation free
//     except for Ket results.
package gate
