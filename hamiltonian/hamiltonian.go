// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/qchem-go/spinorbit/determinant"
)

var (
	// ErrNilElement indicates a nil matrix-element function.
	ErrNilElement = errors.New("hamiltonian: nil matrix-element function")

	// ErrEmptyBasis indicates an empty determinant basis.
	ErrEmptyBasis = errors.New("hamiltonian: empty determinant basis")

	// ErrEigenFailed indicates the dense eigen-decomposition did not
	// converge.
	ErrEigenFailed = errors.New("hamiltonian: eigen decomposition failed")
)

// ElementFunc evaluates one Hamiltonian matrix element <bra|H|ket>
// between two determinants (the external Slater–Condon capability).
// Any error it returns propagates unmodified and is fatal to the call.
type ElementFunc func(bra, ket determinant.Det) (float64, error)

// Result holds the outcome of a reference solve.
type Result struct {
	// Energy is the ground-state energy: lowest eigenvalue + scalar energy.
	Energy float64
	// ScalarEnergy is the scalar contribution that was added.
	ScalarEnergy float64
	// Eigenvalues are all eigenvalues of the assembled matrix, ascending.
	Eigenvalues []float64
	// Dets is the enumerated basis, in the row/column order of the matrix.
	Dets []determinant.Det
}

// Build assembles the dense ndet×ndet Hamiltonian over dets: every
// ordered pair (I,J) — diagonal and both off-diagonal orderings — is
// evaluated through elem, deliberately without exploiting symmetry.
// Row-major fill in basis order keeps the matrix reproducible.
//
// Errors: ErrNilElement, ErrEmptyBasis; elem errors propagate unmodified.
// Complexity: O(ndet²) element evaluations.
func Build(dets []determinant.Det, elem ElementFunc) (*mat.Dense, error) {
	if elem == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilElement)
	}
	n := len(dets)
	if n == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyBasis)
	}

	data := make([]float64, n*n)
	for i, di := range dets {
		for j, dj := range dets {
			v, err := elem(di, dj)
			if err != nil {
				return nil, err
			}
			data[i*n+j] = v
		}
	}

	return mat.NewDense(n, n, data), nil
}

// Solve enumerates the determinant basis for (nmo, na, nb), assembles
// the dense Hamiltonian through elem, and diagonalizes it exactly.
// scalar is the provider's scalar energy (nuclear repulsion + frozen
// core + scalar contributions) added to the lowest eigenvalue.
//
// Errors: enumeration sentinels from the determinant package,
// ErrNilElement/ErrEmptyBasis/ErrEigenFailed, and any elem error
// unmodified.
func Solve(nmo, na, nb int, elem ElementFunc, scalar float64) (*Result, error) {
	dets, err := determinant.Enumerate(nmo, na, nb)
	if err != nil {
		return nil, err
	}

	h, err := Build(dets, elem)
	if err != nil {
		return nil, err
	}

	// Both halves were computed equal; hand the buffer to the symmetric
	// eigensolver (it reads the upper triangle).
	n := len(dets)
	sym := mat.NewSymDense(n, h.RawMatrix().Data)

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, fmt.Errorf("Solve(ndet=%d): %w", n, ErrEigenFailed)
	}
	vals := eig.Values(nil) // ascending order

	return &Result{
		Energy:       vals[0] + scalar,
		ScalarEnergy: scalar,
		Eigenvalues:  vals,
		Dets:         dets,
	}, nil
}

// Symmetric reports whether h is numerically symmetric within eps.
// Used by tests and the verify path; the build itself never assumes it.
func Symmetric(h mat.Matrix, eps float64) bool {
	r, c := h.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(h.At(i, j)-h.At(j, i)) > eps {
				return false
			}
		}
	}

	return true
}
