// SPDX-License-Identifier: MIT

// Package weyl classifies two-qubit gates up to local (single-qubit)
// operations: the Makhlin local invariants (g1, g2, g3), the Weyl-chamber
// coordinates (c1, c2, c3) and the maps between them and back to gates.
//
// 🚀 What is the Weyl chamber?
//
//	Every two-qubit gate factors as U = e^{iφ}·k1·A(c)·k2 with k1, k2 local
//	and A(c) = exp(iπ/2·(c1·σxσx + c2·σyσy + c3·σzσz)). The coordinates c
//	(units of π) are unique once folded into the tetrahedron
//	O(0,0,0) A1(1,0,0) A2(½,½,0) A3(½,½,½), with the base triangle glued
//	along c1 ↦ 1 − c1.
//
// ✨ Key features:
//   - Invariants(g): trace/determinant formulas in the magic basis,
//     insensitive to eigenvalue order and global phase
//   - FromGate(g): eigenphases of m = Bᵀ·B by simultaneous diagonalization
//     of its commuting real and imaginary parts (gonum mat.EigenSym)
//   - FromInvariants(li): closed-form cubic solution
//   - CanonicalGate(c): the inverse map, validated against the chamber
//   - Fold(c): canonical representative under translations, permutations,
//     pairwise sign flips and the c3 reflection
//   - InvariantJacobian(u): analytic derivatives for gradient methods
//   - LocalInvariantsFunctional: J_T for local-invariant targets
//   - named points and edges for plotting collaborators
//
// Canonical representative:
//
//	c1 < ½ : 0 ≤ c3 ≤ c2 ≤ c1
//	c1 ≥ ½ : 0 < c3 ≤ c2 ≤ 1 − c1   (c3 = 0 is mapped to c1 ≤ ½)
//
//	CNOT ↦ (½, 0, 0), iSWAP ↦ (½, ½, 0), SWAP ↦ (½, ½, ½), identity ↦ (0, 0, 0).
//
// ⚙️ Usage:
//
//	c, err := weyl.FromGate(u, weyl.WithUnitarityTolerance(1e-8))
//	li := weyl.InvariantsFromCoordinates(c)
//	a, err := weyl.CanonicalGate(c)
//
// Advisories:
//
//	Near-singular determinants and clamped roots are reported through the
//	logger (Debug, component=weyl) and the optional DegeneracyHandler as
//	errors matching ErrNumericalDegeneracy; the computation proceeds.
//
// Performance:
//
//   - every operation is O(1) on fixed 4×4 data; no goroutines, no state.
package weyl
