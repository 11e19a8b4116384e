// SPDX-License-Identifier: MIT

package weyl

// Named points of the Weyl chamber (units of π), as used when drawing it.
// A1 and M lie on the glued half of the base triangle; their canonical
// representatives are O and Q.
var (
	O  = Coordinates{0, 0, 0}          // identity
	A1 = Coordinates{1, 0, 0}          // identity (glued image of O)
	A2 = Coordinates{0.5, 0.5, 0}      // iSWAP
	A3 = Coordinates{0.5, 0.5, 0.5}    // SWAP
	L  = Coordinates{0.5, 0, 0}        // CNOT
	M  = Coordinates{0.75, 0.25, 0}    // glued image of Q
	N  = Coordinates{0.75, 0.25, 0.25} // √SWAP†
	P  = Coordinates{0.25, 0.25, 0.25} // √SWAP
	Q  = Coordinates{0.25, 0.25, 0}    // √iSWAP
)

// PointNames lists the named points in a stable order.
var PointNames = []string{"O", "A1", "A2", "A3", "L", "M", "N", "P", "Q"}

// NamedPoint returns the named point, reporting false for unknown names.
func NamedPoint(name string) (Coordinates, bool) {
	switch name {
	case "O":
		return O, true
	case "A1":
		return A1, true
	case "A2":
		return A2, true
	case "A3":
		return A3, true
	case "L":
		return L, true
	case "M":
		return M, true
	case "N":
		return N, true
	case "P":
		return P, true
	case "Q":
		return Q, true
	}

	return Coordinates{}, false
}

// Edge joins two named points. Foreground marks edges visible from the
// default viewing angle of a 3-D rendering.
type Edge struct {
	From, To   string
	Foreground bool
}

// ChamberEdges are the six edges of the chamber tetrahedron.
var ChamberEdges = []Edge{
	{"O", "A1", true},
	{"A1", "A2", true},
	{"A2", "A3", true},
	{"A3", "A1", true},
	{"A3", "O", true},
	{"O", "A2", false},
}

// PerfectEntanglerEdges are the nine edges of the perfect-entangler
// polyhedron L M A2 Q P N.
var PerfectEntanglerEdges = []Edge{
	{"L", "N", true},
	{"L", "P", true},
	{"N", "P", true},
	{"N", "A2", true},
	{"N", "M", true},
	{"M", "L", false},
	{"Q", "L", false},
	{"P", "Q", false},
	{"P", "A2", false},
}
