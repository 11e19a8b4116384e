// SPDX-License-Identifier: MIT

// Package krotov builds the boundary conditions ("chi constructors") that a
// Krotov optimizer needs to steer a two-qubit gate toward the perfect
// entanglers, or toward a fixed local-equivalence class. The optimizer owns
// the iteration; this package only turns forward-propagated states into
// co-states.
//
// 🚀 How a chi is built
//
//	fw (4 propagated states) ──► U[i][k] = ⟨basisᵢ|fwₖ⟩
//	U ──► strategy: A = ∂Φ/∂conj(U)   (zero if the target is met)
//	A ──► A = (1 − w)·A + w·U/4        (unitarity weight, default 0)
//	A ──► χₖ = Σᵢ A[i][k]·|basisᵢ⟩
//
// ✨ Strategies (closed set):
//   - NearestByCoordinates: Φ = signed distance to the perfect-entangler
//     polyhedron, gradient by central differences (gonum diff/fd)
//   - NearestByInvariants: Φ = −sign(g3)·F_PE, analytic gradient from
//     weyl.InvariantJacobian
//   - TowardInvariants{Target}: Φ = −|g(U) − g(Target)|²
//
// ⚙️ Usage:
//
//	basis, _ := gate.CanonicalBasis(5)
//	chi, err := krotov.NewChiConstructor(basis, krotov.NearestByInvariants{},
//		krotov.WithUnitarityWeight(0.1))
//	states, err := chi(fw)
//
// Moving each fwₖ along χₖ increases Φ to first order; callers that select a
// strategy by name use ModeFromString and NewStrategy.
package krotov
