package exchange_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qchem-go/spinorbit/exchange"
)

// TestCoefficientsRoundTrip covers the per-irrep block structure,
// including an empty irrep stored as null.
func TestCoefficientsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coeff.json")
	blocks := [][]float64{
		{1.0, 0.0, 0.0, 1.0}, // irrep 0: 2x2
		nil,                  // irrep 1: no orbitals
		{0.70710678},         // irrep 2: 1x1
	}

	require.NoError(t, exchange.WriteCoefficients(path, blocks))

	got, err := exchange.ReadCoefficients(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, blocks[0], got[0])
	require.Nil(t, got[1]) // null block survives as nil
	require.Equal(t, blocks[2], got[2])
}

// TestCoefficientsMissingKey rejects a document without the "Ca" entry.
func TestCoefficientsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Cb": [[1.0]]}`), 0o644))

	_, err := exchange.ReadCoefficients(path)
	require.ErrorIs(t, err, exchange.ErrMissingField)
}
