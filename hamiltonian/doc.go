// Package hamiltonian assembles and diagonalizes the active-space
// Hamiltonian over an explicitly enumerated determinant basis. It is a
// correctness-grade reference path — exact, dense, O(ndet²) matrix
// elements and full eigen-decomposition — used to validate an
// active-space Hamiltonian for small systems, not to solve large ones.
//
// The matrix-element function (Slater–Condon rules under the provider's
// Hamiltonian) is consumed as an opaque capability: any
// func(Det, Det) (float64, error) participates, including hand-computed
// tables in tests. Both halves of the matrix are computed independently
// — symmetry is a checked property of the result, never an assumption
// of the build.
//
// Diagonalization is delegated to gonum's dense symmetric eigensolver
// (mat.EigenSym); eigenvalues come back in ascending order and the
// reported ground-state energy is the lowest eigenvalue plus the scalar
// energy supplied by the integral provider.
package hamiltonian
