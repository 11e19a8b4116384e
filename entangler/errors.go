// SPDX-License-Identifier: MIT
// Package entangler: sentinel error set.
// Every message is prefixed with "entangler: ..."; chamber violations are
// reported with weyl.ErrOutOfChamber (wrapped), not re-declared here.

package entangler

import "errors"

var (
	// ErrUnknownRegion is returned for a Region value or name outside the
	// declared set.
	ErrUnknownRegion = errors.New("entangler: unknown region")

	// ErrUnknownScale is returned by InvariantDistance for a Scale value
	// outside the declared set.
	ErrUnknownScale = errors.New("entangler: unknown distance scale")
)
