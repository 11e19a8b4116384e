// SPDX-License-Identifier: MIT
// Package gate: sentinel error set.
// Every message is prefixed with "gate: ..."; operations wrap these with an
// operation tag (see gateErrorf) and callers match them via errors.Is.

package gate

import "errors"

var (
	// ErrInvalidGate is returned when an operator fails the unitarity check
	// ‖U†U − I‖_max > ε, or contains NaN/Inf entries.
	ErrInvalidGate = errors.New("gate: operator is not unitary within tolerance")

	// ErrDimensionMismatch indicates kets of the wrong length or a basis
	// with the wrong number of states.
	ErrDimensionMismatch = errors.New("gate: dimension mismatch")

	// ErrSingular is returned by Inverse when a zero pivot is encountered and
	// by Unitarize when g†g is not positive definite.
	ErrSingular = errors.New("gate: singular matrix")
)
