// SPDX-License-Identifier: MIT

// Package core: flat-slice providers.
//
// DenseSource and DenseRDMs are the concrete, in-memory implementations
// of the capability interfaces: contiguous row-major buffers with the
// explicit offset formulas
//
//	pair(i,j)       = i*n + j
//	quad(i,j,k,l)   = ((i*n+j)*n+k)*n + l
//	hex(i..n)       = ((((i*n+j)*n+k)*n+l)*n+m)*n + nn
//
// Accessors are O(1) and unchecked (hot path; an out-of-range index is a
// programmer error). Validate() is the safety gate: it must be called
// once after construction/decoding and returns ErrDataInconsistent on
// any dimension mismatch, which is the only failure mode the expansion
// engine defines at this layer.

package core

import "fmt"

// DenseSource is an IntegralSource backed by flat row-major slices.
// Exported fields make it trivially constructible in tests and directly
// decodable from the JSON source files used by the CLI.
type DenseSource struct {
	// NOrb is the number of active spatial orbitals.
	NOrb int `json:"nmo"`
	// Sym holds the irrep label of each spatial orbital (len == NOrb).
	Sym []int `json:"symmetry"`

	// HA, HB are the one-electron integrals per spin channel (len == NOrb²).
	HA []float64 `json:"oei_a"`
	HB []float64 `json:"oei_b"`

	// VAA, VAB, VBB are the two-electron integrals per spin sector
	// (len == NOrb⁴). VAA/VBB are antisymmetrized <ij||kl>; VAB is <ij|kl>.
	VAA []float64 `json:"tei_aa"`
	VAB []float64 `json:"tei_ab"`
	VBB []float64 `json:"tei_bb"`

	// EFrozenCore, EScalar, ENuclear are the scalar energy contributions.
	EFrozenCore float64 `json:"frozen_core_energy"`
	EScalar     float64 `json:"scalar_energy"`
	ENuclear    float64 `json:"nuclear_repulsion_energy"`
}

// Compile-time conformance checks.
var (
	_ IntegralSource = (*DenseSource)(nil)
	_ RDMs           = (*DenseRDMs)(nil)
	_ Solver         = (*StaticSolver)(nil)
)

// lenCheck pairs a field name with its observed and required lengths.
type lenCheck struct {
	name      string
	got, want int
}

// Validate checks that every slice length agrees with NOrb.
// Returns ErrDataInconsistent (wrapped with the offending field) on the
// first mismatch. Complexity: O(1).
func (s *DenseSource) Validate() error {
	if s.NOrb <= 0 {
		return fmt.Errorf("DenseSource: nmo=%d: %w", s.NOrb, ErrDataInconsistent)
	}
	n2 := s.NOrb * s.NOrb
	n4 := n2 * n2
	if len(s.Sym) != s.NOrb {
		return fmt.Errorf("DenseSource: symmetry length %d, want %d: %w", len(s.Sym), s.NOrb, ErrDataInconsistent)
	}
	for _, c := range []lenCheck{
		{"oei_a", len(s.HA), n2},
		{"oei_b", len(s.HB), n2},
		{"tei_aa", len(s.VAA), n4},
		{"tei_ab", len(s.VAB), n4},
		{"tei_bb", len(s.VBB), n4},
	} {
		if c.got != c.want {
			return fmt.Errorf("DenseSource: %s length %d, want %d: %w", c.name, c.got, c.want, ErrDataInconsistent)
		}
	}

	return nil
}

// NMO returns the number of active spatial orbitals.
func (s *DenseSource) NMO() int { return s.NOrb }

// OEIA returns the alpha one-electron integral <i|h|j>.
func (s *DenseSource) OEIA(i, j int) float64 { return s.HA[i*s.NOrb+j] }

// OEIB returns the beta one-electron integral <i|h|j>.
func (s *DenseSource) OEIB(i, j int) float64 { return s.HB[i*s.NOrb+j] }

// TEIAA returns the antisymmetrized alpha-alpha integral <ij||kl>.
func (s *DenseSource) TEIAA(i, j, k, l int) float64 { return s.VAA[s.quad(i, j, k, l)] }

// TEIAB returns the alpha-beta integral <ij|kl>.
func (s *DenseSource) TEIAB(i, j, k, l int) float64 { return s.VAB[s.quad(i, j, k, l)] }

// TEIBB returns the antisymmetrized beta-beta integral <ij||kl>.
func (s *DenseSource) TEIBB(i, j, k, l int) float64 { return s.VBB[s.quad(i, j, k, l)] }

// MOSymmetry returns the per-orbital irrep labels (read-only).
func (s *DenseSource) MOSymmetry() []int { return s.Sym }

// FrozenCoreEnergy returns the frozen-core energy.
func (s *DenseSource) FrozenCoreEnergy() float64 { return s.EFrozenCore }

// ScalarEnergy returns the scalar Hamiltonian contribution.
func (s *DenseSource) ScalarEnergy() float64 { return s.EScalar }

// NuclearRepulsionEnergy returns the nuclear repulsion energy.
func (s *DenseSource) NuclearRepulsionEnergy() float64 { return s.ENuclear }

// quad computes the row-major offset of (i,j,k,l) in an NOrb⁴ buffer.
func (s *DenseSource) quad(i, j, k, l int) int {
	n := s.NOrb

	return ((i*n+j)*n+k)*n + l
}

// DenseRDMs is an RDMs bundle backed by flat row-major slices.
// Rank-3 slices may be nil when Rank < 3; the accessors must then not be
// called (MaxRank gates them upstream).
type DenseRDMs struct {
	// NAct is the number of active spatial orbitals.
	NAct int `json:"nact"`
	// Rank is the highest rank present (1, 2, or 3).
	Rank int `json:"max_rank"`

	D1A []float64 `json:"g1a"`
	D1B []float64 `json:"g1b"`

	D2AA []float64 `json:"g2aa"`
	D2AB []float64 `json:"g2ab"`
	D2BB []float64 `json:"g2bb"`

	D3AAA []float64 `json:"g3aaa,omitempty"`
	D3AAB []float64 `json:"g3aab,omitempty"`
	D3ABB []float64 `json:"g3abb,omitempty"`
	D3BBB []float64 `json:"g3bbb,omitempty"`
}

// Validate checks every present slice length against NAct and Rank.
// Returns ErrDataInconsistent on the first mismatch.
func (r *DenseRDMs) Validate() error {
	if r.NAct <= 0 {
		return fmt.Errorf("DenseRDMs: nact=%d: %w", r.NAct, ErrDataInconsistent)
	}
	if r.Rank < 1 || r.Rank > 3 {
		return fmt.Errorf("DenseRDMs: max_rank=%d: %w", r.Rank, ErrDataInconsistent)
	}
	n2 := r.NAct * r.NAct
	n4 := n2 * n2
	n6 := n4 * n2
	checks := []lenCheck{
		{"g1a", len(r.D1A), n2},
		{"g1b", len(r.D1B), n2},
	}
	if r.Rank >= 2 {
		checks = append(checks,
			lenCheck{"g2aa", len(r.D2AA), n4},
			lenCheck{"g2ab", len(r.D2AB), n4},
			lenCheck{"g2bb", len(r.D2BB), n4},
		)
	}
	if r.Rank >= 3 {
		checks = append(checks,
			lenCheck{"g3aaa", len(r.D3AAA), n6},
			lenCheck{"g3aab", len(r.D3AAB), n6},
			lenCheck{"g3abb", len(r.D3ABB), n6},
			lenCheck{"g3bbb", len(r.D3BBB), n6},
		)
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("DenseRDMs: %s length %d, want %d: %w", c.name, c.got, c.want, ErrDataInconsistent)
		}
	}

	return nil
}

// NActive returns the number of active spatial orbitals.
func (r *DenseRDMs) NActive() int { return r.NAct }

// MaxRank returns the highest rank present in the bundle.
func (r *DenseRDMs) MaxRank() int { return r.Rank }

func (r *DenseRDMs) G1A(i, j int) float64 { return r.D1A[i*r.NAct+j] }
func (r *DenseRDMs) G1B(i, j int) float64 { return r.D1B[i*r.NAct+j] }

func (r *DenseRDMs) G2AA(i, j, k, l int) float64 { return r.D2AA[r.quad(i, j, k, l)] }
func (r *DenseRDMs) G2AB(i, j, k, l int) float64 { return r.D2AB[r.quad(i, j, k, l)] }
func (r *DenseRDMs) G2BB(i, j, k, l int) float64 { return r.D2BB[r.quad(i, j, k, l)] }

func (r *DenseRDMs) G3AAA(i, j, k, l, m, n int) float64 { return r.D3AAA[r.hex(i, j, k, l, m, n)] }
func (r *DenseRDMs) G3AAB(i, j, k, l, m, n int) float64 { return r.D3AAB[r.hex(i, j, k, l, m, n)] }
func (r *DenseRDMs) G3ABB(i, j, k, l, m, n int) float64 { return r.D3ABB[r.hex(i, j, k, l, m, n)] }
func (r *DenseRDMs) G3BBB(i, j, k, l, m, n int) float64 { return r.D3BBB[r.hex(i, j, k, l, m, n)] }

func (r *DenseRDMs) quad(i, j, k, l int) int {
	n := r.NAct

	return ((i*n+j)*n+k)*n + l
}

func (r *DenseRDMs) hex(i, j, k, l, m, nn int) int {
	n := r.NAct

	return ((((i*n+j)*n+k)*n+l)*n+m)*n + nn
}

// StaticSolver is a canned Solver over precomputed density matrices and
// energies. It serves the CLI (RDMs decoded from a file) and tests.
type StaticSolver struct {
	// Bundle holds the precomputed density matrices.
	Bundle *DenseRDMs
	// Energies maps each state to its ordered per-root energies.
	Energies map[StateInfo][]float64
}

// ComputeAverageRDMs returns the canned bundle; it fails with
// ErrUnsupportedRank when a higher rank is requested than was computed.
func (s *StaticSolver) ComputeAverageRDMs(_ StateWeights, maxRank int) (RDMs, error) {
	if s.Bundle == nil {
		return nil, fmt.Errorf("StaticSolver: %w", ErrNilSource)
	}
	if maxRank > s.Bundle.Rank {
		return nil, fmt.Errorf("StaticSolver: rank %d requested, have %d: %w",
			maxRank, s.Bundle.Rank, ErrUnsupportedRank)
	}

	return s.Bundle, nil
}

// StateEnergies returns the canned per-root energy map.
func (s *StaticSolver) StateEnergies() map[StateInfo][]float64 { return s.Energies }
