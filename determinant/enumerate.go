// SPDX-License-Identifier: MIT

package determinant

import "fmt"

// Enumerate builds the full determinant basis for nmo active orbitals
// with na alpha and nb beta electrons.
//
// Algorithm Outline:
//  1. Validate: 1 <= nmo <= MaxOrbitals, 0 <= na <= nmo, 0 <= nb <= nmo.
//  2. Generate all C(nmo,na) alpha occupation strings in lexicographic
//     combination order.
//  3. For each alpha string, generate all C(nmo,nb) beta strings, again
//     lexicographic, and emit one Det per (alpha, beta) pair.
//
// The result has exactly C(nmo,na)·C(nmo,nb) determinants, no
// duplicates, and an order that is identical run-to-run (alpha-major,
// combination-lexicographic in each spin channel).
//
// Errors:
//   - ErrTooManyOrbitals      — nmo outside [1, MaxOrbitals].
//   - ErrInvalidElectronCount — na or nb outside [0, nmo].
//
// Complexity: O(ndet · n) time, O(ndet) memory.
func Enumerate(nmo, na, nb int) ([]Det, error) {
	if nmo < 1 || nmo > MaxOrbitals {
		return nil, fmt.Errorf("Enumerate(nmo=%d): %w", nmo, ErrTooManyOrbitals)
	}
	if na < 0 || na > nmo {
		return nil, fmt.Errorf("Enumerate(na=%d, nmo=%d): %w", na, nmo, ErrInvalidElectronCount)
	}
	if nb < 0 || nb > nmo {
		return nil, fmt.Errorf("Enumerate(nb=%d, nmo=%d): %w", nb, nmo, ErrInvalidElectronCount)
	}

	alphas := combinations(nmo, na)
	betas := combinations(nmo, nb)

	dets := make([]Det, 0, len(alphas)*len(betas))
	for _, astr := range alphas {
		var da Det
		for _, i := range astr {
			da = da.WithA(i)
		}
		for _, bstr := range betas {
			d := da
			for _, i := range bstr {
				d = d.WithB(i)
			}
			dets = append(dets, d)
		}
	}

	return dets, nil
}

// BasisSize returns C(nmo,na)·C(nmo,nb) without materializing the basis.
// Shares Enumerate's validation and sentinels.
func BasisSize(nmo, na, nb int) (int, error) {
	if nmo < 1 || nmo > MaxOrbitals {
		return 0, fmt.Errorf("BasisSize(nmo=%d): %w", nmo, ErrTooManyOrbitals)
	}
	if na < 0 || na > nmo {
		return 0, fmt.Errorf("BasisSize(na=%d, nmo=%d): %w", na, nmo, ErrInvalidElectronCount)
	}
	if nb < 0 || nb > nmo {
		return 0, fmt.Errorf("BasisSize(nb=%d, nmo=%d): %w", nb, nmo, ErrInvalidElectronCount)
	}

	return binomial(nmo, na) * binomial(nmo, nb), nil
}

// combinations returns every k-subset of {0..n-1} in lexicographic
// order. k == 0 yields a single empty combination (one closed-shell
// string), matching the Cartesian-product semantics of Enumerate.
func combinations(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}

	out := make([][]int, 0, binomial(n, k))
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i // first combination: 0,1,...,k-1
	}
	for {
		comb := make([]int, k)
		copy(comb, idx)
		out = append(out, comb)

		// advance to the next combination (rightmost incrementable position)
		p := k - 1
		for p >= 0 && idx[p] == n-k+p {
			p--
		}
		if p < 0 {
			return out
		}
		idx[p]++
		for q := p + 1; q < k; q++ {
			idx[q] = idx[q-1] + 1
		}
	}
}

// binomial computes C(n,k) with the multiplicative formula (exact for
// the small n this package targets).
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}
