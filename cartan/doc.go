// SPDX-License-Identifier: MIT

// Package cartan factors two-qubit gates into local and non-local parts,
// and fits a prescribed local-equivalence class to a target gate.
//
// 🚀 The Cartan (KAK) decomposition
//
//	u = ph · K1 · A · K2,   ph⁴ = det u,  K1, K2 ∈ SU(2)⊗SU(2)
//
// In the magic basis the local gates are exactly the real orthogonal
// matrices SO(4) and A is diagonal, so the factorization reduces to a real
// orthogonal diagonalization of m = UBᵀ·UB (weyl.Diagonalize).
//
// ✨ Key features:
//   - Decompose(u): Decomposition{Phase, K1, A, K2}, A in the class of u
//   - ClosestLocallyEquivalent(u, c): the gate of class c nearest to u,
//     Fit{Gate, K1, K2, Phase, Residual}
//
// How a fit is found:
//
//	u ──► ph·O1·diag(F)·O2                      (Cartan factors)
//	F ──► best of 24 permutations × 8 sign sets of the eigenphases of c
//	    ──► starting O1', O2' and phase        (exact when u ∈ class c)
//	start ──► BFGS over phase + so(4) ⊕ so(4)  (gonum optimize, diff/fd)
//
// ⚙️ Usage:
//
//	d, err := cartan.Decompose(u)
//	fit, err := cartan.ClosestLocallyEquivalent(u, weyl.L,
//		cartan.WithRestarts(8), cartan.WithSeed(7))
//
// Determinism: restarts after the first are jittered from a seeded stream;
// the same options always return the same Fit.
package cartan
