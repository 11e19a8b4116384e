// SPDX-License-Identifier: MIT

// Package entangler decides whether a two-qubit gate is a perfect entangler,
// i.e. whether it can turn some product state into a maximally entangled
// one, and measures how far a gate is from that set.
//
// 🚀 The perfect-entangler polyhedron
//
//	Inside the Weyl chamber the perfect entanglers form the closed polyhedron
//	with vertices L(½,0,0), A2(½,½,0), P(¼,¼,¼), Q(¼,¼,0), M(¾,¼,0) and
//	N(¾,¼,¼). Three facets separate it from the rest of the chamber:
//
//	  W0   c1 + c2 ≥ ½   (facet L Q P)
//	  W0*  c1 − c2 ≤ ½   (facet L M N)
//	  W1   c2 + c3 ≤ ½   (facet A2 P N)
//
// ✨ Key features:
//   - IsPerfectEntangler / Distance on coordinates: closed region, signed
//     distance (+ inside, 0 on the boundary, − outside)
//   - IsPerfectEntanglerInvariants / InvariantDistance on (g1, g2, g3),
//     consistent with the coordinate answers for the same gate
//   - RegionOf, InRegion, ProjectToPE, Concurrence, FPE
//   - RandomPoint / RandomGate per region from a caller-owned *rand.Rand
//   - Classify: everything above for one gate in a single call
//
// ⚙️ Usage:
//
//	c, _ := weyl.FromGate(u)
//	if entangler.IsPerfectEntangler(c) { ... }
//	d := entangler.Distance(c, entangler.WithUnits(entangler.UnitsRadians))
//
// Boundary convention:
//
//	Facet inequalities are relaxed by the tolerance (DefaultTolerance), and
//	distances within it are reported as exactly 0, so Distance(c) == 0
//	always implies IsPerfectEntangler(c). CNOT (½,0,0) lies on two facets
//	and is a perfect entangler; the identity, A1 and SWAP are the farthest
//	points, at −√2/4.
//
// Performance:
//
//   - O(1) per query. RandomPoint draws from a box six times the chamber's
//     volume: about 12 draws per PE point and 48 per W0 or W0* point.
package entangler
