// Package spinorbit exports active-space electronic-structure data —
// one- and two-electron integrals and reduced density matrices over
// spatial orbitals — into an explicit, antisymmetrized spin-orbital
// representation for external solvers, and validates active-space
// Hamiltonians by exact diagonalization over an enumerated determinant
// basis.
//
// What spinorbit provides:
//
//   - Spin-orbital expansion: deterministic, sign-correct lifting of
//     spatial integrals and RDMs (ranks 1–3) to redundant, directly
//     indexable spin-orbital tuple lists
//   - Determinant enumeration: fixed-width occupation bitstrings with
//     reproducible lexicographic ordering
//   - Reference FCI: dense Hamiltonian assembly over the full determinant
//     basis and exact eigen-decomposition for a ground-state check
//   - Exchange records: the JSON interchange format (integrals, RDMs,
//     orbital coefficients) consumed and produced by external solvers
//
// Everything is organized under flat subpackages:
//
//	core/        — shared value types and the capability interfaces
//	               (integral source, RDM bundle, active-space solver)
//	spinorb/     — the spin-orbital expansion engine
//	determinant/ — occupation bitstrings and basis enumeration
//	hamiltonian/ — dense Hamiltonian build + eigensolve (gonum)
//	exchange/    — JSON exchange records and file-backed sources
//	cmd/         — the spinorbit command-line tool
//
// Design commitments: no global state, deterministic iteration orders
// everywhere (byte-identical re-export on identical input), sentinel
// errors matched with errors.Is, and capability interfaces so any
// integral provider or matrix-element function can be substituted,
// including hand-built test doubles.
//
//	go get github.com/qchem-go/spinorbit
package spinorbit
