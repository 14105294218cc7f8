// Package determinant provides occupation-number representations of
// Slater determinants over an active orbital set, and the deterministic
// enumeration of the full determinant basis for given electron counts.
//
// # Representation
//
// A determinant is a pair of fixed-width bit-sets (one alpha word, one
// beta word): bit i set in the alpha word means spatial orbital i holds
// an alpha electron. Determinants are plain comparable values — equality
// is bit-pattern equality and Less gives a total order — so they can be
// deduplicated, sorted, and used as map keys without any auxiliary
// structure. The width is fixed at 64 orbitals; enumeration rejects
// larger active spaces instead of growing dynamically.
//
// # Enumeration
//
// Enumerate(nmo, na, nb) forms every combination of na alpha-occupied
// orbitals and, nested inside it, every combination of nb beta-occupied
// orbitals, both in lexicographic combination order. The basis is the
// Cartesian product (size C(nmo,na)·C(nmo,nb)), contains no duplicates,
// and its order is reproducible run-to-run — the row/column ordering of
// any Hamiltonian built over it is therefore stable.
//
// Time complexity: O(C(nmo,na)·C(nmo,nb)) — exponential by design; this
// package feeds a brute-force validation tool for small active spaces.
package determinant
