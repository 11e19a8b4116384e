// SPDX-License-Identifier: MIT

// Package rng holds the seeding policy shared by the samplers and the
// multi-start fitter: a fixed default stream, and cheap independent
// sub-streams derived from a parent.
//
// APIs take randomness in one of two shapes, and both resolve to the same
// default stream:
//   - a caller-owned *rand.Rand, where nil selects DefaultSeed (OrDefault)
//   - an integer seed option, where 0 selects DefaultSeed (FromSeed)
//
// math/rand.Rand is not goroutine-safe; every stream has one owner.
package rng

import "math/rand"

// DefaultSeed seeds the stream used when no randomness is supplied.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic stream; seed == 0 selects DefaultSeed.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// OrDefault returns r, or a fresh FromSeed(0) stream for nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return FromSeed(0)
	}

	return r
}

// DeriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent stream for the given id. It consumes one
// value of base so that repeated ids still differ.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(base.Int63(), stream)))
}
