// SPDX-License-Identifier: MIT

package gate

import (
	"math"
	"math/cmplx"
)

// Single is a single-qubit operator.
type Single [2][2]complex128

// LocalParams is the number of real parameters of LocalFromParams.
const LocalParams = 8

// I2 is the single-qubit identity.
var I2 = Single{{1, 0}, {0, 1}}

// U2 returns the general single-qubit unitary
//
//	e^{iφ} · [[ cosθ·e^{iφ1},   sinθ·e^{iφ2}],
//	          [−sinθ·e^{−iφ2},  cosθ·e^{−iφ1}]]
//
// Every element of U(2) has this form; phi = 0 gives SU(2).
func U2(phi, theta, phi1, phi2 float64) Single {
	var (
		g    = cmplx.Exp(complex(0, phi))
		c, s = math.Cos(theta), math.Sin(theta)
	)

	return Single{
		{g * complex(c, 0) * cmplx.Exp(complex(0, phi1)), g * complex(s, 0) * cmplx.Exp(complex(0, phi2))},
		{-g * complex(s, 0) * cmplx.Exp(complex(0, -phi2)), g * complex(c, 0) * cmplx.Exp(complex(0, -phi1))},
	}
}

// Kron returns a ⊗ b; a acts on the left qubit.
func Kron(a, b Single) Gate {
	var out Gate
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[i][j] = a[i/2][j/2] * b[i%2][j%2]
		}
	}

	return out
}

// LocalFromParams returns U2(p[0:4]) ⊗ U2(p[4:8]).
// Used to parameterize arbitrary local gates, e.g. by optimizers and
// random-gate generators.
func LocalFromParams(p [LocalParams]float64) Gate {
	return Kron(U2(p[0], p[1], p[2], p[3]), U2(p[4], p[5], p[6], p[7]))
}
