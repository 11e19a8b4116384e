// SPDX-License-Identifier: MIT

package cartan

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/weylchamber/gate"
)

// alignment pairs the magic-basis eigenphases f of a gate with those of a
// canonical gate, dc: tₖ = signs[k]·dc[perm[k]] with an even number of
// negative signs, and e^{iα} the best common phase.
type alignment struct {
	perm     [gate.Dim]int
	signs    [gate.Dim]float64
	odd      bool // perm is an odd permutation
	alpha    float64
	residual float64 // ‖f − e^{iα}·t‖₂
}

// alignments scores every permutation and even sign pattern of dc against
// f and returns them by increasing residual. Equal residuals keep the
// enumeration order.
func alignments(f, dc [gate.Dim]complex128) []alignment {
	perms := permutations()
	out := make([]alignment, 0, len(perms)*8)
	for _, p := range perms {
		for mask := 0; mask < 1<<gate.Dim; mask++ {
			var (
				a   = alignment{perm: p, odd: parity(p)}
				neg int
			)
			for k := 0; k < gate.Dim; k++ {
				a.signs[k] = 1
				if mask&(1<<k) != 0 {
					a.signs[k] = -1
					neg++
				}
			}
			if neg%2 != 0 {
				continue
			}
			var (
				t   [gate.Dim]complex128
				dot complex128
			)
			for k := 0; k < gate.Dim; k++ {
				t[k] = complex(a.signs[k], 0) * dc[p[k]]
				dot += f[k] * cmplx.Conj(t[k])
			}
			a.alpha = cmplx.Phase(dot)
			rot := cmplx.Rect(1, a.alpha)
			var r float64
			for k := 0; k < gate.Dim; k++ {
				d := f[k] - rot*t[k]
				r += real(d)*real(d) + imag(d)*imag(d)
			}
			a.residual = math.Sqrt(r)
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].residual < out[j].residual })

	return out
}

// permutations lists the 24 orderings of 0..3 (Heap's algorithm).
func permutations() [][gate.Dim]int {
	var (
		out [][gate.Dim]int
		p   = [gate.Dim]int{0, 1, 2, 3}
		gen func(n int)
	)
	gen = func(n int) {
		if n == 1 {
			out = append(out, p)
			return
		}
		for i := 0; i < n-1; i++ {
			gen(n - 1)
			if n%2 == 0 {
				p[i], p[n-1] = p[n-1], p[i]
			} else {
				p[0], p[n-1] = p[n-1], p[0]
			}
		}
		gen(n - 1)
	}
	gen(gate.Dim)

	return out
}

// parity reports whether p has an odd number of inversions.
func parity(p [gate.Dim]int) bool {
	var inv int
	for i := 0; i < gate.Dim; i++ {
		for j := i + 1; j < gate.Dim; j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}

	return inv%2 == 1
}
