package entangler_test

import (
	"fmt"

	"github.com/katalvlaran/weylchamber/entangler"
	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClassify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Classify four standard gates. CNOT sits on the boundary of the
//	perfect-entangler polyhedron (distance 0), B deep inside it, the
//	identity and SWAP at the two farthest corners.
//
// Options:
//   - defaults (tolerance 1e-10, distances in units of π)
//
// Complexity: O(1) per gate
func ExampleClassify() {
	gates := []struct {
		name string
		g    gate.Gate
	}{
		{"CNOT", gate.CNOT},
		{"B", gate.BGate},
		{"I", gate.Identity},
		{"SWAP", gate.SWAP},
	}
	for _, tc := range gates {
		cl, err := entangler.Classify(tc.g)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-4s %-3s %+.4f %t\n", tc.name, cl.Region, cl.Distance, cl.PerfectEntangler)
	}
	// Output:
	// CNOT PE  +0.0000 true
	// B    PE  +0.1768 true
	// I    W0  -0.3536 false
	// SWAP W1  -0.3536 false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleProjectToPE
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The nearest perfect entangler to SWAP, measured in the chamber, is the
//	foot of the perpendicular on the W1 facet.
//
// Complexity: O(1)
func ExampleProjectToPE() {
	p, err := entangler.ProjectToPE(weyl.A3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// (0.5, 0.25, 0.25)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInvariantDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Work from local invariants only. The identity (1, 0, 3) is outside the
//	polyhedron in both metrics; the coordinate metric reports radians.
//
// Complexity: O(1)
func ExampleInvariantDistance() {
	li := weyl.LocalInvariants{G1: 1, G2: 0, G3: 3}

	raw, _ := entangler.InvariantDistance(li, entangler.ScaleRaw)
	rad, _ := entangler.InvariantDistance(li, entangler.ScaleCoordinates,
		entangler.WithUnits(entangler.UnitsRadians))

	fmt.Printf("perfect entangler: %t\n", entangler.IsPerfectEntanglerInvariants(li))
	fmt.Printf("F_PE: %.1f\n", entangler.FPE(li))
	fmt.Printf("raw: %.4f\n", raw)
	fmt.Printf("radians: %.4f\n", rad)
	// Output:
	// perfect entangler: false
	// F_PE: 2.0
	// raw: -2.0000
	// radians: -1.1107
}
