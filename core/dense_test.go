// Package core_test contains unit tests for the dense flat-slice
// providers and the canned solver.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qchem-go/spinorbit/core"
)

// newSource builds a valid 2-orbital DenseSource whose tensor entries
// encode their own flat offsets, so accessor indexing is checkable.
func newSource(t *testing.T) *core.DenseSource {
	t.Helper()

	const n = 2
	src := &core.DenseSource{
		NOrb:        n,
		Sym:         []int{0, 3},
		HA:          make([]float64, n*n),
		HB:          make([]float64, n*n),
		VAA:         make([]float64, n*n*n*n),
		VAB:         make([]float64, n*n*n*n),
		VBB:         make([]float64, n*n*n*n),
		EFrozenCore: 1.5,
		EScalar:     0.25,
		ENuclear:    0.75,
	}
	for p := range src.HA {
		src.HA[p] = float64(p)
		src.HB[p] = 100 + float64(p)
	}
	for q := range src.VAA {
		src.VAA[q] = float64(q)
		src.VAB[q] = 1000 + float64(q)
		src.VBB[q] = 2000 + float64(q)
	}
	require.NoError(t, src.Validate())

	return src
}

// TestDenseSourceOffsets verifies the row-major offset formulas behind
// every accessor.
func TestDenseSourceOffsets(t *testing.T) {
	src := newSource(t)

	require.Equal(t, 2, src.NMO())
	require.Equal(t, float64(0*2+1), src.OEIA(0, 1))       // pair offset i*n+j
	require.Equal(t, 100+float64(1*2+0), src.OEIB(1, 0))   // beta block shifted fill
	require.Equal(t, float64(((1*2+0)*2+1)*2+0), src.TEIAA(1, 0, 1, 0))
	require.Equal(t, 1000+float64(((0*2+1)*2+1)*2+1), src.TEIAB(0, 1, 1, 1))
	require.Equal(t, 2000+float64(((1*2+1)*2+1)*2+1), src.TEIBB(1, 1, 1, 1))
	require.Equal(t, []int{0, 3}, src.MOSymmetry())
	require.Equal(t, 1.5, src.FrozenCoreEnergy())
	require.Equal(t, 0.25, src.ScalarEnergy())
	require.Equal(t, 0.75, src.NuclearRepulsionEnergy())
}

// TestDenseSourceValidate walks every dimension mismatch and expects
// ErrDataInconsistent for each.
func TestDenseSourceValidate(t *testing.T) {
	break1 := func(mutate func(*core.DenseSource)) error {
		src := newSource(t)
		mutate(src)

		return src.Validate()
	}

	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.NOrb = 0 }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.Sym = []int{0} }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.HA = s.HA[:3] }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.HB = nil }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.VAA = s.VAA[:15] }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.VAB = nil }), core.ErrDataInconsistent)
	require.ErrorIs(t, break1(func(s *core.DenseSource) { s.VBB = append(s.VBB, 0) }), core.ErrDataInconsistent)
}

// newRDMs builds a valid rank-3 bundle over one active orbital.
func newRDMs(rank int) *core.DenseRDMs {
	r := &core.DenseRDMs{
		NAct: 1,
		Rank: rank,
		D1A:  []float64{0.9},
		D1B:  []float64{0.8},
	}
	if rank >= 2 {
		r.D2AA = []float64{0.1}
		r.D2AB = []float64{0.2}
		r.D2BB = []float64{0.3}
	}
	if rank >= 3 {
		r.D3AAA = []float64{0.01}
		r.D3AAB = []float64{0.02}
		r.D3ABB = []float64{0.03}
		r.D3BBB = []float64{0.04}
	}

	return r
}

// TestDenseRDMsValidate covers rank gating and length mismatches.
func TestDenseRDMsValidate(t *testing.T) {
	for rank := 1; rank <= 3; rank++ {
		require.NoError(t, newRDMs(rank).Validate())
	}

	bad := newRDMs(2)
	bad.Rank = 4
	require.ErrorIs(t, bad.Validate(), core.ErrDataInconsistent) // rank outside 1..3

	bad = newRDMs(3)
	bad.D3ABB = nil
	require.ErrorIs(t, bad.Validate(), core.ErrDataInconsistent) // rank-3 slice missing

	bad = newRDMs(1)
	bad.D1A = nil
	require.ErrorIs(t, bad.Validate(), core.ErrDataInconsistent)

	// Rank 1 must not require rank-2 slices.
	require.NoError(t, newRDMs(1).Validate())
}

// TestStaticSolver checks rank gating and the canned energy map.
func TestStaticSolver(t *testing.T) {
	state := core.StateInfo{Irrep: 0, NA: 1, NB: 1}
	solver := &core.StaticSolver{
		Bundle:   newRDMs(2),
		Energies: map[core.StateInfo][]float64{state: {-1.5, -0.9}},
	}

	rdms, err := solver.ComputeAverageRDMs(nil, 2)
	require.NoError(t, err)
	require.Equal(t, 1, rdms.NActive())
	require.Equal(t, 2, rdms.MaxRank())

	_, err = solver.ComputeAverageRDMs(nil, 3) // more than the bundle holds
	require.ErrorIs(t, err, core.ErrUnsupportedRank)

	require.Equal(t, []float64{-1.5, -0.9}, solver.StateEnergies()[state])

	empty := &core.StaticSolver{}
	_, err = empty.ComputeAverageRDMs(nil, 1)
	require.ErrorIs(t, err, core.ErrNilSource)
}
