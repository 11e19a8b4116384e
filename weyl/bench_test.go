package weyl_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/weylchamber/weyl"
)

var benchPoint = weyl.Coordinates{C1: 0.4, C2: 0.3, C3: 0.1}

// BenchmarkInvariants measures the trace/determinant formulas on a scrambled gate.
func BenchmarkInvariants(b *testing.B) {
	u := scrambled(rand.New(rand.NewSource(1)), benchPoint)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := weyl.Invariants(u); err != nil {
			b.Fatalf("Invariants failed: %v", err)
		}
	}
}

// BenchmarkFromGate measures the eigenphase route, including the unitarity check.
func BenchmarkFromGate(b *testing.B) {
	u := scrambled(rand.New(rand.NewSource(1)), benchPoint)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := weyl.FromGate(u); err != nil {
			b.Fatalf("FromGate failed: %v", err)
		}
	}
}

// BenchmarkFromInvariants measures the closed-form cubic solution.
func BenchmarkFromInvariants(b *testing.B) {
	li := weyl.InvariantsFromCoordinates(benchPoint)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := weyl.FromInvariants(li); err != nil {
			b.Fatalf("FromInvariants failed: %v", err)
		}
	}
}

// BenchmarkInvariantJacobian measures the analytic derivatives.
func BenchmarkInvariantJacobian(b *testing.B) {
	u := scrambled(rand.New(rand.NewSource(1)), benchPoint)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := weyl.InvariantJacobian(u); err != nil {
			b.Fatalf("InvariantJacobian failed: %v", err)
		}
	}
}

// BenchmarkFold measures the symmetry reduction.
func BenchmarkFold(b *testing.B) {
	c := weyl.Coordinates{C1: 1.3, C2: -0.2, C3: 2.1}
	for i := 0; i < b.N; i++ {
		_ = weyl.Fold(c)
	}
}
