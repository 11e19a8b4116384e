// SPDX-License-Identifier: MIT

package gate

import "math"

var (
	cos8  = math.Cos(math.Pi / 8)
	sin8  = math.Sin(math.Pi / 8)
	cos38 = math.Cos(3 * math.Pi / 8)
	sin38 = math.Sin(3 * math.Pi / 8)
)

// Standard two-qubit gates in the canonical basis. Their Weyl-chamber
// coordinates (units of π) are noted for reference.
var (
	// Identity, (0, 0, 0).
	Identity = Gate{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}

	// CNOT with the left qubit as control, (½, 0, 0).
	CNOT = Gate{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}

	// CZ, (½, 0, 0).
	CZ = Gate{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, -1}}

	// SWAP, (½, ½, ½).
	SWAP = Gate{{1, 0, 0, 0}, {0, 0, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}}

	// ISWAP, (½, ½, 0).
	ISWAP = Gate{{1, 0, 0, 0}, {0, 0, 1i, 0}, {0, 1i, 0, 0}, {0, 0, 0, 1}}

	// SqrtISWAP, (¼, ¼, 0).
	SqrtISWAP = Gate{
		{1, 0, 0, 0},
		{0, complex(invSqrt2, 0), complex(0, invSqrt2), 0},
		{0, complex(0, invSqrt2), complex(invSqrt2, 0), 0},
		{0, 0, 0, 1},
	}

	// SqrtSWAP, (¼, ¼, ¼). Its adjoint, the other square root of SWAP, is
	// (¾, ¼, ¼).
	SqrtSWAP = Gate{
		{1, 0, 0, 0},
		{0, complex(0.5, -0.5), complex(0.5, 0.5), 0},
		{0, complex(0.5, 0.5), complex(0.5, -0.5), 0},
		{0, 0, 0, 1},
	}

	// BGate is the Berkeley B gate, (½, ¼, 0).
	BGate = Gate{
		{complex(cos8, 0), 0, 0, complex(0, sin8)},
		{0, complex(cos38, 0), complex(0, sin38), 0},
		{0, complex(0, sin38), complex(cos38, 0), 0},
		{complex(0, sin8), 0, 0, complex(cos8, 0)},
	}

	// SxSx is σx ⊗ σx.
	SxSx = Gate{{0, 0, 0, 1}, {0, 0, 1, 0}, {0, 1, 0, 0}, {1, 0, 0, 0}}

	// SySy is σy ⊗ σy.
	SySy = Gate{{0, 0, 0, -1}, {0, 0, 1, 0}, {0, 1, 0, 0}, {-1, 0, 0, 0}}

	// SzSz is σz ⊗ σz.
	SzSz = Gate{{1, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, -1, 0}, {0, 0, 0, 1}}
)
