// SPDX-License-Identifier: MIT
// Package weyl: sentinel error set.
// Every message is prefixed with "weyl: ..."; operations wrap these with an
// operation tag (see weylErrorf) and callers match them via errors.Is.
// Errors from package gate (gate.ErrInvalidGate) are propagated wrapped, not
// re-declared.

package weyl

import "errors"

var (
	// ErrOutOfChamber is returned by CanonicalGate and ValidateChamber when
	// coordinates violate the chamber inequalities beyond the chamber
	// tolerance and folding was not requested.
	ErrOutOfChamber = errors.New("weyl: coordinates outside the Weyl chamber")

	// ErrNumericalDegeneracy marks a determinant or eigenvalue degeneracy.
	// It is delivered as an advisory (logger and degeneracy handler) while
	// the computation proceeds; it is returned as an error only when no
	// finite result exists (exactly singular gate).
	ErrNumericalDegeneracy = errors.New("weyl: numerical degeneracy")

	// ErrEigenFailed indicates that no simultaneous diagonalization of the
	// real and imaginary parts of m = Bᵀ·B was found. It only occurs for
	// inputs that are far from unitary.
	ErrEigenFailed = errors.New("weyl: simultaneous diagonalization failed")

	// ErrInvalidInvariants is returned for NaN or ±Inf invariants.
	ErrInvalidInvariants = errors.New("weyl: invariants are not finite")

	// ErrUnknownForm is returned for an unsupported Form value.
	ErrUnknownForm = errors.New("weyl: unknown functional form")
)
