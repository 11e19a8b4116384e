package krotov_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/katalvlaran/weylchamber/krotov"
	"github.com/katalvlaran/weylchamber/weyl"
)

func benchChi(b *testing.B, s krotov.Strategy) {
	basis, err := gate.CanonicalBasis(6)
	if err != nil {
		b.Fatalf("CanonicalBasis failed: %v", err)
	}
	u := scrambled(rand.New(rand.NewSource(1)), weyl.Coordinates{C1: 0.2, C2: 0.1, C3: 0.05})
	fw, err := gate.MappedBasis(u, basis)
	if err != nil {
		b.Fatalf("MappedBasis failed: %v", err)
	}
	chi, err := krotov.NewChiConstructor(basis, s, krotov.WithUnitarityWeight(0.1))
	if err != nil {
		b.Fatalf("NewChiConstructor failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chi(fw); err != nil {
			b.Fatalf("chi failed: %v", err)
		}
	}
}

// BenchmarkChi_Invariants measures the analytic-gradient strategy.
func BenchmarkChi_Invariants(b *testing.B) { benchChi(b, krotov.NearestByInvariants{}) }

// BenchmarkChi_Coordinates measures the finite-difference strategy
// (64 objective evaluations per call).
func BenchmarkChi_Coordinates(b *testing.B) { benchChi(b, krotov.NearestByCoordinates{}) }
