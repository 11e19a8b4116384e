// SPDX-License-Identifier: MIT
// Package cartan: sentinel error set.
// Every message is prefixed with "cartan: ..."; input validation errors of
// the gate and weyl packages are propagated wrapped.

package cartan

import "errors"

var (
	// ErrDecompositionFailed is returned when the magic-basis factors of a
	// gate cannot be made real orthogonal, e.g. because the simultaneous
	// eigendecomposition did not converge.
	ErrDecompositionFailed = errors.New("cartan: decomposition failed")
)
