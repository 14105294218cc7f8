// SPDX-License-Identifier: MIT

package spinorb

import (
	"fmt"

	"github.com/qchem-go/spinorbit/core"
)

// a and b shorten the spatial→spin-orbital map in the emission tables.
func a(i int) int { return core.SpinOrbital(i, core.Alpha) }
func b(i int) int { return core.SpinOrbital(i, core.Beta) }

// expandPairs lifts a pair-indexed spatial quantity to spin orbitals:
// the full alpha block (2i,2j) first, then the full beta block
// (2i+1,2j+1). No cross-spin entry is ever emitted — it is implicitly
// zero, and its absence is a correctness invariant checked by tests.
// Complexity: O(n²) time and output.
func expandPairs(n int, fa, fb func(i, j int) float64) []OneBodyEntry {
	out := make([]OneBodyEntry, 0, 2*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, OneBodyEntry{a(i), a(j), fa(i, j)})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, OneBodyEntry{b(i), b(j), fb(i, j)})
		}
	}

	return out
}

// expandQuads lifts a quadruple-indexed spatial quantity to spin
// orbitals. For every spatial (i,j,k,l) exactly six rows are emitted,
// in this fixed order:
//
//	aaaa  (2i,   2j,   2k,   2l  )  +faa(i,j,k,l)
//	abab  (2i,   2j+1, 2k,   2l+1)  +fab(i,j,k,l)
//	abba  (2i,   2j+1, 2l+1, 2k  )  -fab(i,j,k,l)
//	baab  (2j+1, 2i,   2k,   2l+1)  -fab(i,j,k,l)
//	baba  (2j+1, 2i,   2l+1, 2k  )  +fab(i,j,k,l)
//	bbbb  (2i+1, 2j+1, 2k+1, 2l+1)  +fbb(i,j,k,l)
//
// The four mixed rows are the four orderings of one alpha and one beta
// index within each index pair; each carries the parity sign of the
// implied transposition, which is exactly the antisymmetry of <pq||rs>
// under exchange within the first or last pair. The output is
// intentionally redundant (6·n⁴ rows); consumers index it directly.
// Complexity: O(n⁴) time and output.
func expandQuads(n int, faa, fab, fbb func(i, j, k, l int) float64) []TwoBodyEntry {
	out := make([]TwoBodyEntry, 0, 6*n*n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					vab := fab(i, j, k, l)
					out = append(out,
						TwoBodyEntry{a(i), a(j), a(k), a(l), faa(i, j, k, l)}, // aaaa
						TwoBodyEntry{a(i), b(j), a(k), b(l), +vab},           // abab
						TwoBodyEntry{a(i), b(j), b(l), a(k), -vab},           // abba
						TwoBodyEntry{b(j), a(i), a(k), b(l), -vab},           // baab
						TwoBodyEntry{b(j), a(i), b(l), a(k), +vab},           // baba
						TwoBodyEntry{b(i), b(j), b(k), b(l), fbb(i, j, k, l)}, // bbbb
					)
				}
			}
		}
	}

	return out
}

// ExpandOneBody lifts the one-electron integrals of src to spin
// orbitals: entry (2i,2j) holds <i|h|j> alpha, entry (2i+1,2j+1) holds
// <i|h|j> beta, and no mixed-spin entry exists.
//
// Errors: core.ErrNilSource on a nil source.
func ExpandOneBody(src core.IntegralSource) ([]OneBodyEntry, error) {
	if src == nil {
		return nil, fmt.Errorf("ExpandOneBody: %w", core.ErrNilSource)
	}

	return expandPairs(src.NMO(), src.OEIA, src.OEIB), nil
}

// ExpandTwoBody lifts the antisymmetrized two-electron integrals of src
// to spin orbitals — six signed rows per spatial quadruple, physicist
// convention <pq||rs> (see expandQuads for the exact table).
//
// Errors: core.ErrNilSource on a nil source.
func ExpandTwoBody(src core.IntegralSource) ([]TwoBodyEntry, error) {
	if src == nil {
		return nil, fmt.Errorf("ExpandTwoBody: %w", core.ErrNilSource)
	}

	return expandQuads(src.NMO(), src.TEIAA, src.TEIAB, src.TEIBB), nil
}
