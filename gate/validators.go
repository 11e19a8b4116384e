// SPDX-License-Identifier: MIT

package gate

import "math/cmplx"

// UnitarityDeviation returns max |(g†g − I)ᵢⱼ|.
// Complexity: O(1) (64 complex multiply-adds).
func UnitarityDeviation(g Gate) float64 {
	var (
		p    = g.Dagger().Mul(g)
		dev  float64
		d    float64
		i, j int
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if i == j {
				d = cmplx.Abs(p[i][j] - 1)
			} else {
				d = cmplx.Abs(p[i][j])
			}
			if d > dev {
				dev = d
			}
		}
	}

	return dev
}

// ValidateUnitary checks g†g = I within the configured tolerance.
//
// Errors:
//   - ErrInvalidGate (wrapped with "ValidateUnitary") on NaN/Inf entries or
//     when UnitarityDeviation(g) exceeds ε.
func ValidateUnitary(g Gate, opts ...Option) error {
	o := gatherOptions(opts...)
	if !g.IsFinite() {
		return gateErrorf(opValidate, ErrInvalidGate)
	}
	if UnitarityDeviation(g) > o.eps {
		return gateErrorf(opValidate, ErrInvalidGate)
	}

	return nil
}
