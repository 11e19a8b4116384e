// SPDX-License-Identifier: MIT
// Package krotov: sentinel error set.
// Every message is prefixed with "krotov: ..."; errors of the weyl
// computations on the achieved gate are propagated wrapped.

package krotov

import "errors"

var (
	// ErrBasisSize is returned when a basis or a set of forward states does
	// not hold exactly four kets.
	ErrBasisSize = errors.New("krotov: exactly four states required")

	// ErrStateDimension is returned when kets differ in length, or are
	// shorter than the two-qubit space.
	ErrStateDimension = errors.New("krotov: state dimension mismatch")

	// ErrNilStrategy is returned by NewChiConstructor and Objective for a
	// nil Strategy.
	ErrNilStrategy = errors.New("krotov: nil strategy")

	// ErrUnknownMode is returned for a mode name or value outside the
	// declared set.
	ErrUnknownMode = errors.New("krotov: unknown mode")
)
