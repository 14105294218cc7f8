// Package spinorb is the spin-orbital expansion engine: it lifts
// spatial-orbital quantities (one index per spatial orbital, indices in
// [0,nmo)) to spin-orbital quantities (one index per spin orbital,
// indices in [0,2·nmo)) with antisymmetry made explicit in the output.
//
// # Index convention
//
// Spatial orbital i maps to spin orbitals 2i (alpha) and 2i+1 (beta) —
// core.SpinOrbital is the single source of truth. One-electron
// quantities emit two entries per spatial pair (alpha-alpha and
// beta-beta; cross-spin entries are never emitted because they vanish
// for non-relativistic spin-unrestricted integrals). Two-electron
// quantities emit six sign-labeled entries per spatial quadruple, and
// three-body density matrices emit twenty per spatial 6-tuple.
//
// # Redundancy is the contract
//
// The output stores every sign-related permutation explicitly — a
// 6·nmo⁴ two-body payload instead of one canonical representative plus
// a symmetry rule. Consumers index directly with zero permutation
// logic; do not deduplicate these lists without changing every
// downstream reader. The sign tables are hard-coded (derived once from
// fermionic antisymmetry) and locked by the unit tests in this package
// rather than re-derived at run time.
//
// # Determinism
//
// All loops run in fixed nested index order and states are visited in
// core.SortedStates order, so re-running an export on the same
// immutable provider yields byte-identical records.
package spinorb
