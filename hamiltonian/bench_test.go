package hamiltonian_test

import (
	"testing"

	"math/bits"

	"github.com/qchem-go/spinorbit/determinant"
	"github.com/qchem-go/spinorbit/hamiltonian"
)

// BenchmarkSolve4in4 measures the full reference path (enumerate,
// dense build, exact diagonalization) on a 4-orbital, 2+2 electron
// space (36 determinants).
func BenchmarkSolve4in4(b *testing.B) {
	elem := func(bra, ket determinant.Det) (float64, error) {
		diff := bits.OnesCount64(bra.A^ket.A) + bits.OnesCount64(bra.B^ket.B)
		if diff == 0 {
			return -1.0, nil
		}

		return 0.5 / float64(diff), nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hamiltonian.Solve(4, 2, 2, elem, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
