// SPDX-License-Identifier: MIT

package spinorb

import (
	"fmt"

	"github.com/qchem-go/spinorbit/core"
)

// ExpandGamma1 lifts the one-body density matrix to spin orbitals with
// the same two-entries-per-pair rule as the one-electron integrals:
// (2i,2j) carries <i^ j> alpha, (2i+1,2j+1) beta.
//
// Errors: core.ErrNilSource on a nil bundle.
func ExpandGamma1(r core.RDMs) ([]OneBodyEntry, error) {
	if r == nil {
		return nil, fmt.Errorf("ExpandGamma1: %w", core.ErrNilSource)
	}

	return expandPairs(r.NActive(), r.G1A, r.G1B), nil
}

// ExpandGamma2 lifts the two-body density matrix <i^ j^ l k> to spin
// orbitals with the identical six-row sign table as the two-electron
// integrals (see expandQuads).
//
// Errors:
//   - core.ErrNilSource       — nil bundle.
//   - core.ErrUnsupportedRank — bundle holds only rank 1.
func ExpandGamma2(r core.RDMs) ([]TwoBodyEntry, error) {
	if r == nil {
		return nil, fmt.Errorf("ExpandGamma2: %w", core.ErrNilSource)
	}
	if r.MaxRank() < 2 {
		return nil, fmt.Errorf("ExpandGamma2: have rank %d: %w", r.MaxRank(), core.ErrUnsupportedRank)
	}

	return expandQuads(r.NActive(), r.G2AA, r.G2AB, r.G2BB), nil
}

// ExpandGamma3 lifts the three-body density matrix <i^ j^ k^ n m l> to
// spin orbitals. For every spatial 6-tuple (i,j,k,l,m,n) exactly twenty
// rows are emitted: 1 aaa, 9 aab, 9 abb, 1 bbb.
//
// In the mixed sectors the single differently-spun operator is placed in
// each of the three creation slots and, independently, each of the three
// annihilation slots; every placement carries the parity sign of the
// fermionic transpositions that move it there from canonical position
// (last slot for aab, first slot for abb). The 9 rows of a mixed sector
// are therefore the outer product of three signed creation placements
// and three signed annihilation placements. The table below is
// hard-coded; its signs are locked by unit tests, not re-derived.
//
// Errors:
//   - core.ErrNilSource       — nil bundle.
//   - core.ErrUnsupportedRank — bundle holds rank < 3.
//
// Complexity: O(n⁶) time, 20·n⁶ output rows. This is the densest path
// in the engine; it is only run when rank 3 is explicitly requested.
func ExpandGamma3(r core.RDMs) ([]ThreeBodyEntry, error) {
	if r == nil {
		return nil, fmt.Errorf("ExpandGamma3: %w", core.ErrNilSource)
	}
	if r.MaxRank() < 3 {
		return nil, fmt.Errorf("ExpandGamma3: have rank %d: %w", r.MaxRank(), core.ErrUnsupportedRank)
	}

	n := r.NActive()
	out := make([]ThreeBodyEntry, 0, 20*n*n*n*n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					for m := 0; m < n; m++ {
						for nn := 0; nn < n; nn++ {
							vaab := r.G3AAB(i, j, k, l, m, nn)
							vabb := r.G3ABB(i, j, k, l, m, nn)

							// aaa sector: one row, all even indices.
							out = append(out,
								ThreeBodyEntry{a(i), a(j), a(k), a(l), a(m), a(nn), r.G3AAA(i, j, k, l, m, nn)})

							// aab sector: beta operator walks the creation slots
							// (3rd, 2nd, 1st) and the annihilation slots (3rd,
							// 2nd, 1st); signs multiply.
							out = append(out,
								ThreeBodyEntry{a(i), a(j), b(k), a(l), a(m), b(nn), +vaab},
								ThreeBodyEntry{a(i), a(j), b(k), a(l), b(nn), a(m), -vaab},
								ThreeBodyEntry{a(i), a(j), b(k), b(nn), a(l), a(m), +vaab},

								ThreeBodyEntry{a(i), b(k), a(j), a(l), a(m), b(nn), -vaab},
								ThreeBodyEntry{a(i), b(k), a(j), a(l), b(nn), a(m), +vaab},
								ThreeBodyEntry{a(i), b(k), a(j), b(nn), a(l), a(m), -vaab},

								ThreeBodyEntry{b(k), a(i), a(j), a(l), a(m), b(nn), +vaab},
								ThreeBodyEntry{b(k), a(i), a(j), a(l), b(nn), a(m), -vaab},
								ThreeBodyEntry{b(k), a(i), a(j), b(nn), a(l), a(m), +vaab},
							)

							// abb sector: the alpha operator walks the creation
							// and annihilation slots (1st, 2nd, 3rd).
							out = append(out,
								ThreeBodyEntry{a(i), b(j), b(k), a(l), b(m), b(nn), +vabb},
								ThreeBodyEntry{a(i), b(j), b(k), b(m), a(l), b(nn), -vabb},
								ThreeBodyEntry{a(i), b(j), b(k), b(m), b(nn), a(l), +vabb},

								ThreeBodyEntry{b(j), a(i), b(k), a(l), b(m), b(nn), -vabb},
								ThreeBodyEntry{b(j), a(i), b(k), b(m), a(l), b(nn), +vabb},
								ThreeBodyEntry{b(j), a(i), b(k), b(m), b(nn), a(l), -vabb},

								ThreeBodyEntry{b(j), b(k), a(i), a(l), b(m), b(nn), +vabb},
								ThreeBodyEntry{b(j), b(k), a(i), b(m), a(l), b(nn), -vabb},
								ThreeBodyEntry{b(j), b(k), a(i), b(m), b(nn), a(l), +vabb},
							)

							// bbb sector: one row, all odd indices.
							out = append(out,
								ThreeBodyEntry{b(i), b(j), b(k), b(l), b(m), b(nn), r.G3BBB(i, j, k, l, m, nn)})
						}
					}
				}
			}
		}
	}

	return out, nil
}
