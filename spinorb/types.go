// SPDX-License-Identifier: MIT

// Package spinorb: entry tuple types.
// An expansion is a flat, ordered sequence of signed index tuples; the
// order is part of the exchange contract (it is what makes re-export
// byte-identical).

package spinorb

// OneBodyEntry is one spin-orbital element (i, j, value) of a
// one-electron integral matrix or a one-body density matrix.
type OneBodyEntry struct {
	I, J int
	V    float64
}

// TwoBodyEntry is one spin-orbital element (i, j, k, l, value) of an
// antisymmetrized two-electron integral tensor <ij||kl> or a two-body
// density matrix <i^ j^ l k>.
type TwoBodyEntry struct {
	I, J, K, L int
	V          float64
}

// ThreeBodyEntry is one spin-orbital element (i, j, k, l, m, n, value)
// of a three-body density matrix <i^ j^ k^ n m l>.
type ThreeBodyEntry struct {
	I, J, K, L, M, N int
	V                float64
}
