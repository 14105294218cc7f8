// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// All components MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)) and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors (out-of-range accessor
// indices on the dense providers).

package core

import "errors"

var (
	// ErrDataInconsistent is returned when an integral or RDM provider
	// reports mismatched dimensions across its accessors (e.g. a symmetry
	// vector whose length disagrees with NMO, or a tensor slice whose
	// length disagrees with the declared orbital count).
	ErrDataInconsistent = errors.New("core: inconsistent provider dimensions")

	// ErrUnsupportedRank is returned when a third-order density matrix is
	// requested but the upstream solver computed at most rank 2.
	ErrUnsupportedRank = errors.New("core: requested RDM rank not available")

	// ErrNilSource indicates a nil IntegralSource, RDMs, or Solver was
	// passed where a live capability was required.
	ErrNilSource = errors.New("core: nil capability")
)
