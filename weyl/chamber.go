// SPDX-License-Identifier: MIT

package weyl

import (
	"fmt"
	"math"
	"sort"
)

// InChamber reports whether c lies in the closed Weyl chamber, the
// tetrahedron O A1 A2 A3, with every inequality relaxed by tol:
//
//	c1 < ½:  0 ≤ c3 ≤ c2 ≤ c1
//	c1 ≥ ½:  0 ≤ c3 ≤ c2 ≤ 1 − c1
func InChamber(c Coordinates, tol float64) bool {
	if !c.IsFinite() {
		return false
	}
	if c.C3 < -tol || c.C3 > c.C2+tol {
		return false
	}
	if c.C1 < 0.5 {
		return c.C2 <= c.C1+tol
	}

	return c.C2 <= 1-c.C1+tol
}

// IsCanonical reports whether c is the canonical representative of its
// class: in the chamber, and with c1 ≤ ½ whenever c3 ≤ tol (the base
// triangle is glued along c1 ↦ 1 − c1, so the half with c1 ≤ ½ is kept).
func IsCanonical(c Coordinates, tol float64) bool {
	if !InChamber(c, tol) {
		return false
	}

	return !(c.C3 <= tol && c.C1 > 0.5+tol)
}

// ValidateChamber checks InChamber under the configured chamber tolerance.
//
// Errors:
//   - ErrOutOfChamber (wrapped with the offending point).
func ValidateChamber(c Coordinates, opts ...Option) error {
	o := gatherOptions(opts...)
	if !InChamber(c, o.chamberTol) {
		return fmt.Errorf("%s: %v: %w", opValidate, c, ErrOutOfChamber)
	}

	return nil
}

// Fold maps arbitrary coordinates to the canonical representative of their
// local-equivalence class. The symmetry operations used, in order:
//
//  1. translation: every cₖ modulo 1, then into (−½, ½];
//  2. permutation: magnitudes sorted in descending order;
//  3. pairwise sign flips: at most one negative sign remains, on the
//     smallest magnitude (absorbed when the largest magnitude is exactly ½,
//     since −½ ≡ ½, or when the smallest is zero);
//  4. reflection: (a1, a2, −a3) ↦ (1 − a1, a2, a3);
//  5. base triangle: c3 ≤ tol and c1 > ½ ↦ (1 − c1, c2, c3).
//
// The result always has c3 ≥ 0. NaN or ±Inf input is returned unchanged.
func Fold(c Coordinates, opts ...Option) Coordinates {
	o := gatherOptions(opts...)

	return fold(c, o.chamberTol)
}

func fold(c Coordinates, tol float64) Coordinates {
	if !c.IsFinite() {
		return c
	}
	var (
		v   = c.Array()
		neg int
	)
	for k, x := range v {
		x -= math.Floor(x)
		if x > 0.5 {
			x--
		}
		if x < 0 {
			neg++
			x = -x
		}
		v[k] = x
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(v[:])))

	if neg%2 == 1 && v[0] < 0.5 && v[2] > 0 {
		return canonicalize(Coordinates{C1: 1 - v[0], C2: v[1], C3: v[2]}, tol)
	}

	return canonicalize(Coordinates{C1: v[0], C2: v[1], C3: v[2]}, tol)
}

// canonicalize snaps tolerance-level negatives to zero and applies the base
// triangle identification.
func canonicalize(c Coordinates, tol float64) Coordinates {
	if c.C3 < 0 && c.C3 >= -tol {
		c.C3 = 0
	}
	if c.C2 < 0 && c.C2 >= -tol {
		c.C2 = 0
	}
	if c.C3 <= tol && c.C1 > 0.5 {
		c.C1 = 1 - c.C1
	}

	return c
}
