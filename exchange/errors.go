// SPDX-License-Identifier: MIT
// Package exchange: sentinel error set.

package exchange

import "errors"

var (
	// ErrMissingField is returned when a decoded record lacks a
	// contractual field name.
	ErrMissingField = errors.New("exchange: required field missing")

	// ErrBadTuple is returned when an entry tuple has the wrong arity or
	// a non-integral index.
	ErrBadTuple = errors.New("exchange: malformed entry tuple")
)
