// SPDX-License-Identifier: MIT
// Package determinant: sentinel error set.

package determinant

import "errors"

var (
	// ErrInvalidElectronCount is returned when a requested alpha or beta
	// electron count is negative or exceeds the orbital count, making the
	// enumeration empty or undefined.
	ErrInvalidElectronCount = errors.New("determinant: electron count out of range")

	// ErrTooManyOrbitals is returned when the requested active space does
	// not fit the fixed 64-bit occupation words.
	ErrTooManyOrbitals = errors.New("determinant: orbital count outside [1,64]")
)
