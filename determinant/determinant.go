// SPDX-License-Identifier: MIT

package determinant

import (
	"math/bits"
	"strings"
)

// MaxOrbitals is the fixed width of the occupation words. Active spaces
// beyond 64 spatial orbitals are far outside the reach of the dense
// reference solver this package feeds.
const MaxOrbitals = 64

// Det is one Slater determinant in occupation-number form: independent
// alpha and beta occupation bit-sets over the active orbitals.
// Det is a comparable value; identity is the bit pattern. Treat values
// as immutable once enumerated — the With* constructors return copies.
type Det struct {
	// A is the alpha occupation word; bit i = orbital i holds an alpha electron.
	A uint64
	// B is the beta occupation word.
	B uint64
}

// WithA returns a copy of d with alpha occupation of orbital i set.
// Complexity: O(1).
func (d Det) WithA(i int) Det {
	d.A |= 1 << uint(i)

	return d
}

// WithB returns a copy of d with beta occupation of orbital i set.
func (d Det) WithB(i int) Det {
	d.B |= 1 << uint(i)

	return d
}

// OccA reports whether orbital i holds an alpha electron.
func (d Det) OccA(i int) bool { return d.A&(1<<uint(i)) != 0 }

// OccB reports whether orbital i holds a beta electron.
func (d Det) OccB(i int) bool { return d.B&(1<<uint(i)) != 0 }

// CountA returns the number of alpha electrons.
func (d Det) CountA() int { return bits.OnesCount64(d.A) }

// CountB returns the number of beta electrons.
func (d Det) CountB() int { return bits.OnesCount64(d.B) }

// Less defines a total order on determinants (alpha word, then beta
// word). Used for reproducible sorting and dedup checks; the enumeration
// order itself comes from the combination generator, not from Less.
func (d Det) Less(o Det) bool {
	if d.A != o.A {
		return d.A < o.A
	}

	return d.B < o.B
}

// String renders the first n orbitals in occupation notation:
// '2' doubly occupied, 'a' alpha only, 'b' beta only, '0' empty,
// e.g. |2a0b>. Mirrors the listing format of determinant-space solvers.
func (d Det) String(n int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i := 0; i < n; i++ {
		switch {
		case d.OccA(i) && d.OccB(i):
			sb.WriteByte('2')
		case d.OccA(i):
			sb.WriteByte('a')
		case d.OccB(i):
			sb.WriteByte('b')
		default:
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('>')

	return sb.String()
}
