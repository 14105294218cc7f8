// Package spinorb_test contains unit tests for the spin-orbital
// expansion of one- and two-electron integrals.
package spinorb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qchem-go/spinorbit/core"
	"github.com/qchem-go/spinorbit/spinorb"
)

// fixtureSource builds a 2-orbital test double with distinct,
// hand-readable values per tensor: the alpha/beta and sector payloads
// never collide, so misplaced entries are immediately visible.
func fixtureSource(t *testing.T) *core.DenseSource {
	t.Helper()

	const n = 2
	src := &core.DenseSource{
		NOrb:        n,
		Sym:         []int{0, 1},
		HA:          make([]float64, n*n),
		HB:          make([]float64, n*n),
		VAA:         make([]float64, n*n*n*n),
		VAB:         make([]float64, n*n*n*n),
		VBB:         make([]float64, n*n*n*n),
		EFrozenCore: 2.0,
		EScalar:     0.5,
		ENuclear:    1.0,
	}
	for p := range src.HA {
		src.HA[p] = 1 + float64(p)   // 1..4
		src.HB[p] = -1 - float64(p)  // -1..-4
	}
	for q := range src.VAA {
		src.VAA[q] = 10 + float64(q) // 10..25
		src.VAB[q] = 50 + float64(q) // 50..65
		src.VBB[q] = 90 + float64(q) // 90..105
	}
	require.NoError(t, src.Validate())

	return src
}

// TestExpandOneBodyPlacement verifies the one-body placement: entry
// (2i,2j) carries the alpha value, (2i+1,2j+1) the beta value, and no
// mixed-spin entry exists.
func TestExpandOneBodyPlacement(t *testing.T) {
	src := fixtureSource(t)
	oei, err := spinorb.ExpandOneBody(src)
	require.NoError(t, err)

	n := src.NMO()
	require.Len(t, oei, 2*n*n) // two spin channels, n² pairs each

	byIndex := make(map[[2]int]float64, len(oei))
	for _, e := range oei {
		require.Equal(t, e.I%2, e.J%2, "entry (%d,%d) crosses spin channels", e.I, e.J)
		byIndex[[2]int{e.I, e.J}] = e.V
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, src.OEIA(i, j), byIndex[[2]int{2 * i, 2 * j}])
			require.Equal(t, src.OEIB(i, j), byIndex[[2]int{2*i + 1, 2*j + 1}])
			_, crossed := byIndex[[2]int{2 * i, 2*j + 1}]
			require.False(t, crossed, "cross-spin entry (%d,%d) must not exist", 2*i, 2*j+1)
		}
	}
}

// TestExpandOneBodyBlockOrder locks the emission order: the full alpha
// block precedes the full beta block (part of the exchange contract).
func TestExpandOneBodyBlockOrder(t *testing.T) {
	src := fixtureSource(t)
	oei, err := spinorb.ExpandOneBody(src)
	require.NoError(t, err)

	n := src.NMO()
	for p, e := range oei {
		if p < n*n {
			require.Equal(t, 0, e.I%2, "alpha block first")
		} else {
			require.Equal(t, 1, e.I%2, "beta block second")
		}
	}
}

// TestExpandTwoBodySixRows verifies the exact six-row table emitted for
// one spatial quadruple.
func TestExpandTwoBodySixRows(t *testing.T) {
	src := fixtureSource(t)
	tei, err := spinorb.ExpandTwoBody(src)
	require.NoError(t, err)

	n := src.NMO()
	require.Len(t, tei, 6*n*n*n*n)

	// Rows for (i,j,k,l) = (0,1,1,0) sit at offset 6*quad(0,1,1,0).
	i, j, k, l := 0, 1, 1, 0
	base := 6 * (((i*n+j)*n+k)*n + l)
	vaa := src.TEIAA(i, j, k, l)
	vab := src.TEIAB(i, j, k, l)
	vbb := src.TEIBB(i, j, k, l)

	want := []spinorb.TwoBodyEntry{
		{I: 2 * i, J: 2 * j, K: 2 * k, L: 2 * l, V: vaa},             // aaaa
		{I: 2 * i, J: 2*j + 1, K: 2 * k, L: 2*l + 1, V: +vab},        // abab
		{I: 2 * i, J: 2*j + 1, K: 2*l + 1, L: 2 * k, V: -vab},        // abba
		{I: 2*j + 1, J: 2 * i, K: 2 * k, L: 2*l + 1, V: -vab},        // baab
		{I: 2*j + 1, J: 2 * i, K: 2*l + 1, L: 2 * k, V: +vab},        // baba
		{I: 2*i + 1, J: 2*j + 1, K: 2*k + 1, L: 2*l + 1, V: vbb},     // bbbb
	}
	require.Equal(t, want, tei[base:base+6])
}

// TestExpandTwoBodyAntisymmetry checks the sign pairing over the
// whole output: for every abab row, swapping the first index pair must
// find the baab row negated, and swapping the last pair the abba row.
func TestExpandTwoBodyAntisymmetry(t *testing.T) {
	src := fixtureSource(t)
	tei, err := spinorb.ExpandTwoBody(src)
	require.NoError(t, err)

	byIndex := make(map[[4]int]float64, len(tei))
	for _, e := range tei {
		byIndex[[4]int{e.I, e.J, e.K, e.L}] = e.V
	}

	checked := 0
	for _, e := range tei {
		if e.I%2 != 0 || e.J%2 != 1 || e.K%2 != 0 || e.L%2 != 1 {
			continue // anchor on abab rows only
		}
		baab, ok := byIndex[[4]int{e.J, e.I, e.K, e.L}]
		require.True(t, ok)
		require.InDelta(t, -e.V, baab, 1e-15, "first-pair swap must negate")

		abba, ok := byIndex[[4]int{e.I, e.J, e.L, e.K}]
		require.True(t, ok)
		require.InDelta(t, -e.V, abba, 1e-15, "second-pair swap must negate")
		checked++
	}
	require.Equal(t, 16, checked) // one abab row per spatial quadruple
}

// TestExpandDeterminism re-runs the expansion on the same immutable
// source and requires identical output.
func TestExpandDeterminism(t *testing.T) {
	src := fixtureSource(t)

	first, err := spinorb.ExpandTwoBody(src)
	require.NoError(t, err)
	second, err := spinorb.ExpandTwoBody(src)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestExpandNilSource covers the nil-capability sentinel.
func TestExpandNilSource(t *testing.T) {
	_, err := spinorb.ExpandOneBody(nil)
	require.ErrorIs(t, err, core.ErrNilSource)

	_, err = spinorb.ExpandTwoBody(nil)
	require.ErrorIs(t, err, core.ErrNilSource)
}

// TestExpandNoSpuriousValues guards against NaN/Inf leaking through
// the mechanical expansion.
func TestExpandNoSpuriousValues(t *testing.T) {
	src := fixtureSource(t)
	tei, err := spinorb.ExpandTwoBody(src)
	require.NoError(t, err)

	for _, e := range tei {
		require.False(t, math.IsNaN(e.V) || math.IsInf(e.V, 0))
	}
}
