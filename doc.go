// SPDX-License-Identifier: MIT

// Package weylchamber classifies two-qubit quantum gates by their
// non-local content and supplies the pieces a gate optimizer needs to
// steer toward perfect entanglers.
//
// 🚀 What is in the box?
//
//	Pure Go on top of gonum, organized in five subpackages:
//		• gate/      4×4 complex gates, standard gates, magic basis, kets
//		• weyl/      local invariants, Weyl-chamber coordinates, folding
//		• entangler/ perfect-entangler test, regions, distances, sampling
//		• cartan/    KAK decomposition, closest gate of a given class
//		• krotov/    chi constructors (boundary co-states) for Krotov's method
//
// ✨ Why this layout?
//
//   - Every stage is a plain function of a gate or a point: no hidden
//     state, safe from many goroutines
//   - Options configure tolerances, rounding and logging the same way in
//     every package; invalid options panic, invalid inputs return errors
//   - Numerical trouble is reported, not hidden: degeneracy advisories go
//     to log/slog and an optional handler
//
// The Weyl chamber at a glance (units of π):
//
//	O  (0, 0, 0)     identity        A1 (1, 0, 0)     identity (glued)
//	A2 (½, ½, 0)     iSWAP           A3 (½, ½, ½)     SWAP
//	L  (½, 0, 0)     CNOT            Q  (¼, ¼, 0)     √iSWAP
//	P  (¼, ¼, ¼)     √SWAP           N  (¾, ¼, ¼)     √SWAP†
//
// Gates whose point lies in the polyhedron L–Q–M–A2–P–N are perfect
// entanglers: they can create a maximally entangled state from a product
// state.
//
// Quick start:
//
//	cl, err := entangler.Classify(gate.CNOT)
//	// cl.Coordinates = (0.5, 0, 0), cl.Region = PE, cl.Distance = 0
//
//	go get github.com/katalvlaran/weylchamber
package weylchamber
