// SPDX-License-Identifier: MIT

// Package core: domain value types.
// This file holds ONLY immutable value types and their deterministic
// ordering helpers. Interfaces live in api.go, concrete providers in
// dense.go, errors in errors.go.

package core

import "sort"

// Spin labels one of the two spin channels of a spatial orbital.
// The numeric values are part of the exchange contract: 0 = alpha,
// 1 = beta (the "spin" field of an integral record stores them as-is).
type Spin uint8

const (
	// Alpha is the spin-up channel (even spin-orbital indices).
	Alpha Spin = 0
	// Beta is the spin-down channel (odd spin-orbital indices).
	Beta Spin = 1
)

// String returns "alpha" or "beta".
func (s Spin) String() string {
	if s == Beta {
		return "beta"
	}

	return "alpha"
}

// SpinOrbital maps spatial orbital i (0-based) and spin channel s to its
// spin-orbital index: 2i for alpha, 2i+1 for beta.
//
// This function is the single source of truth for the spatial→spin-orbital
// index map; every expansion (one-electron, two-electron, all RDM ranks)
// must go through it so the convention cannot drift between tensors.
// Complexity: O(1).
func SpinOrbital(i int, s Spin) int {
	return 2*i + int(s)
}

// StateInfo identifies one electronic state: its symmetry irreducible
// representation (Cotton ordering) and its alpha/beta electron counts.
// Immutable value; comparable; usable as a map key.
type StateInfo struct {
	// Irrep is the index of the irreducible representation of the state.
	Irrep int
	// NA is the number of alpha electrons in the active space.
	NA int
	// NB is the number of beta electrons in the active space.
	NB int
}

// Multiplicity returns the spin multiplicity 2S+1 assuming a high-spin
// coupling of the unpaired electrons (NA >= NB by convention).
func (s StateInfo) Multiplicity() int {
	return s.NA - s.NB + 1
}

// Less defines the total order used for deterministic iteration over
// state-keyed maps: by Irrep, then NA, then NB.
func (s StateInfo) Less(t StateInfo) bool {
	if s.Irrep != t.Irrep {
		return s.Irrep < t.Irrep
	}
	if s.NA != t.NA {
		return s.NA < t.NA
	}

	return s.NB < t.NB
}

// RootWeight assigns an averaging weight to one root (eigenstate index)
// of a state.
type RootWeight struct {
	// Root is the 0-based eigenstate index within the state's symmetry block.
	Root int
	// Weight is the state-averaging weight attached to that root.
	Weight float64
}

// StateWeights maps each electronic state to the (root, weight) pairs
// over which density matrices are averaged. Keys are unique; map order is
// irrelevant for correctness but MUST be iterated via SortedStates for
// reproducible output.
type StateWeights map[StateInfo][]RootWeight

// SortedStates returns the keys of any state-keyed map in StateInfo.Less
// order. Both StateWeights and per-root energy maps go through here, so
// every export iterates states identically. Complexity: O(n log n).
func SortedStates[V any](m map[StateInfo]V) []StateInfo {
	states := make([]StateInfo, 0, len(m))
	for s := range m {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Less(states[j]) })

	return states
}
