package rng_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/weylchamber/internal/rng"
	"github.com/stretchr/testify/assert"
)

// TestDefaultStream checks that a nil stream and seed 0 select the same
// default sequence.
func TestDefaultStream(t *testing.T) {
	a := rng.FromSeed(0)
	b := rng.FromSeed(rng.DefaultSeed)
	c := rng.OrDefault(nil)
	for i := 0; i < 8; i++ {
		x := a.Int63()
		assert.Equal(t, x, b.Int63())
		assert.Equal(t, x, c.Int63())
	}

	own := rand.New(rand.NewSource(5))
	assert.Same(t, own, rng.OrDefault(own), "a caller stream is used as is")
}

// TestDerive checks determinism and stream separation.
func TestDerive(t *testing.T) {
	a := rng.Derive(rng.FromSeed(0), 1).Int63()
	b := rng.Derive(rng.FromSeed(rng.DefaultSeed), 1).Int63()
	c := rng.Derive(rng.FromSeed(rng.DefaultSeed), 2).Int63()
	assert.Equal(t, a, b)
	assert.NotEqual(t, b, c)

	base := rng.FromSeed(9)
	first, second := rng.Derive(base, 1).Int63(), rng.Derive(base, 1).Int63()
	assert.NotEqual(t, first, second, "each call consumes the parent")
	assert.NotEqual(t, rng.DeriveSeed(7, 0), rng.DeriveSeed(7, 1))
}
