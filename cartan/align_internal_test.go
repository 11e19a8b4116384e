package cartan

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/weylchamber/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutations(t *testing.T) {
	perms := permutations()
	require.Len(t, perms, 24)

	seen := make(map[[gate.Dim]int]bool)
	var odd int
	for _, p := range perms {
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
		if parity(p) {
			odd++
		}
	}
	assert.Equal(t, 12, odd)
	assert.False(t, parity([gate.Dim]int{0, 1, 2, 3}))
	assert.True(t, parity([gate.Dim]int{1, 0, 2, 3}))
}

func TestAlignments(t *testing.T) {
	am := gate.ToMagic(gate.Canonical(0.3, 0.2, 0.1))
	var dc, f [gate.Dim]complex128
	for k := 0; k < gate.Dim; k++ {
		dc[k] = am[k][k]
	}
	// f: dc permuted, two signs flipped, common phase.
	rot := cmplx.Rect(1, 0.4)
	f = [gate.Dim]complex128{-rot * dc[2], rot * dc[0], -rot * dc[3], rot * dc[1]}

	got := alignments(f, dc)
	require.Len(t, got, 24*8)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].residual, got[i].residual)
	}
	best := got[0]
	assert.InDelta(t, 0, best.residual, 1e-12)
	assert.Equal(t, [gate.Dim]int{2, 0, 3, 1}, best.perm)
	// The signs are fixed up to an overall flip absorbed by α.
	for k := 0; k < gate.Dim; k++ {
		tk := cmplx.Rect(1, best.alpha) * complex(best.signs[k], 0) * dc[best.perm[k]]
		assert.InDelta(t, 0, cmplx.Abs(f[k]-tk), 1e-12)
	}
}
