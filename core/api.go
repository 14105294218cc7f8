// SPDX-License-Identifier: MIT

// Package core: capability interfaces for external collaborators.
//
// The integral provider, RDM bundle, and active-space solver are opaque
// external systems. They are modeled here as small accessor interfaces —
// any object exposing the accessors participates, including hand-built
// test doubles with a few literal values. The components in spinorb and
// hamiltonian consume ONLY these interfaces and never mutate them: every
// capability is treated as read-only for the duration of a call.

package core

// IntegralSource is the active-space integral provider: spatial-orbital
// one- and two-electron integrals per spin channel, per-orbital symmetry
// labels, and the scalar energy contributions.
//
// Index arguments are spatial-orbital indices in [0, NMO()). Accessors
// are not required to bounds-check; passing an out-of-range index is a
// programmer error. Implementations must be immutable for the duration
// of an export.
type IntegralSource interface {
	// NMO returns the number of active spatial orbitals.
	NMO() int

	// OEIA returns the alpha one-electron integral <i|h|j>.
	OEIA(i, j int) float64
	// OEIB returns the beta one-electron integral <i|h|j>.
	OEIB(i, j int) float64

	// TEIAA returns the antisymmetrized alpha-alpha two-electron
	// integral <ij||kl> (physicist convention).
	TEIAA(i, j, k, l int) float64
	// TEIAB returns the alpha-beta two-electron integral <ij|kl>.
	TEIAB(i, j, k, l int) float64
	// TEIBB returns the antisymmetrized beta-beta two-electron
	// integral <ij||kl>.
	TEIBB(i, j, k, l int) float64

	// MOSymmetry returns the irrep label of each spatial orbital
	// (Cotton ordering); length must equal NMO(). Callers must treat
	// the returned slice as read-only.
	MOSymmetry() []int

	// FrozenCoreEnergy returns the energy of the frozen core orbitals.
	FrozenCoreEnergy() float64
	// ScalarEnergy returns the scalar contribution of the active-space
	// effective Hamiltonian.
	ScalarEnergy() float64
	// NuclearRepulsionEnergy returns the nuclear repulsion energy.
	NuclearRepulsionEnergy() float64
}

// RDMs is a bundle of spin-resolved reduced density matrices over the
// active orbitals, up to MaxRank. Rank-3 accessors may only be called
// when MaxRank() >= 3; callers gate on MaxRank and return
// ErrUnsupportedRank instead of calling through.
type RDMs interface {
	// NActive returns the number of active spatial orbitals.
	NActive() int
	// MaxRank returns the highest rank available (1, 2, or 3).
	MaxRank() int

	// G1A / G1B are the spin-resolved one-body density matrices <i^ j>.
	G1A(i, j int) float64
	G1B(i, j int) float64

	// G2AA / G2AB / G2BB are the spin-resolved two-body density
	// matrices <i^ j^ l k>.
	G2AA(i, j, k, l int) float64
	G2AB(i, j, k, l int) float64
	G2BB(i, j, k, l int) float64

	// G3AAA / G3AAB / G3ABB / G3BBB are the spin-resolved three-body
	// density matrices <i^ j^ k^ n m l>.
	G3AAA(i, j, k, l, m, n int) float64
	G3AAB(i, j, k, l, m, n int) float64
	G3ABB(i, j, k, l, m, n int) float64
	G3BBB(i, j, k, l, m, n int) float64
}

// Solver is the active-space solver: it produces state-averaged density
// matrices for a set of weighted states and reports per-root energies.
type Solver interface {
	// ComputeAverageRDMs returns density matrices averaged over the
	// given states/roots, computed up to maxRank (1..3).
	ComputeAverageRDMs(weights StateWeights, maxRank int) (RDMs, error)

	// StateEnergies returns, per state, the ordered sequence of
	// per-root energies from the most recent solve.
	StateEnergies() map[StateInfo][]float64
}
