package weyl_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/weyl"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromGate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Classify the standard two-qubit gates. Every gate lands on a vertex or
//	an edge of the chamber:
//	  CNOT → L, iSWAP → A2, SWAP → A3, √iSWAP → Q
//
// Options:
//   - defaults (unitarity ε = 1e-10, results rounded to 8 digits)
//
// Complexity: O(1)
func ExampleFromGate() {
	gates := []struct {
		name string
		g    gate.Gate
	}{
		{"CNOT", gate.CNOT},
		{"iSWAP", gate.ISWAP},
		{"SWAP", gate.SWAP},
		{"√iSWAP", gate.SqrtISWAP},
	}
	for _, tc := range gates {
		c, err := weyl.FromGate(tc.g)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-6s %v\n", tc.name, c)
	}
	// Output:
	// CNOT   (0.5, 0, 0)
	// iSWAP  (0.5, 0.5, 0)
	// SWAP   (0.5, 0.5, 0.5)
	// √iSWAP (0.25, 0.25, 0)
}

// ExampleInvariants shows that local gates leave the invariants unchanged.
func ExampleInvariants() {
	k := gate.Kron(gate.U2(0, 0.3, 1.2, -0.4), gate.U2(0, 2.1, 0.5, 0.9))

	li, _ := weyl.Invariants(gate.CNOT)
	fmt.Println(li)
	li, _ = weyl.Invariants(k.Mul(gate.CNOT).Mul(k.Dagger()))
	fmt.Println(li)
	// Output:
	// (g1=0, g2=0, g3=1)
	// (g1=0, g2=0, g3=1)
}

// ExampleFromInvariants recovers the CNOT class from its invariants.
func ExampleFromInvariants() {
	c, err := weyl.FromInvariants(weyl.LocalInvariants{G1: 0, G2: 0, G3: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c)
	// Output:
	// (0.5, 0, 0)
}

// ExampleFold maps arbitrary coordinates to the canonical representative.
func ExampleFold() {
	fmt.Println(weyl.Fold(weyl.Coordinates{C1: 1.3, C2: -0.2, C3: 2.1}))
	fmt.Println(weyl.Fold(weyl.A1))
	// Output:
	// (0.7, 0.2, 0.1)
	// (0, 0, 0)
}

// ExampleCanonicalGate shows the strict check and the folding fallback.
func ExampleCanonicalGate() {
	c := weyl.Coordinates{C1: 0.2, C2: 0.3}

	_, err := weyl.CanonicalGate(c)
	fmt.Println(errors.Is(err, weyl.ErrOutOfChamber))

	u, _ := weyl.CanonicalGate(c, weyl.WithFolding())
	back, _ := weyl.FromGate(u)
	fmt.Println(back)
	// Output:
	// true
	// (0.3, 0.2, 0)
}

// ExampleLocalInvariantsFunctional compares CNOT with the identity.
func ExampleLocalInvariantsFunctional() {
	jg, _ := weyl.LocalInvariantsFunctional(gate.CNOT, gate.Identity, weyl.FormInvariants)
	jc, _ := weyl.LocalInvariantsFunctional(gate.CNOT, gate.Identity, weyl.FormCoordinates)
	fmt.Printf("%s: %.4f\n%s: %.4f\n", weyl.FormInvariants, jg, weyl.FormCoordinates, jc)
	// Output:
	// invariants: 5.0000
	// coordinates: 0.7071
}
