// SPDX-License-Identifier: MIT

package exchange

import (
	"encoding/json"
	"fmt"
	"os"
)

// coeffKey is the contractual top-level key of a coefficient file.
const coeffKey = "Ca"

// WriteCoefficients persists per-irrep orbital coefficient blocks under
// the key "Ca". A nil block marks an irrep with no orbitals and is
// stored as JSON null, so the irrep structure survives the round trip.
func WriteCoefficients(path string, blocks [][]float64) error {
	buf, err := json.Marshal(map[string][][]float64{coeffKey: blocks})
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(buf, '\n'), 0o644)
}

// ReadCoefficients loads coefficient blocks written by
// WriteCoefficients (or by a cooperating host program). Null blocks
// come back as nil slices. Errors: ErrMissingField when "Ca" is absent;
// I/O and JSON errors unmodified.
func ReadCoefficients(path string) ([][]float64, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string][][]float64
	if err = json.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	blocks, ok := doc[coeffKey]
	if !ok {
		return nil, fmt.Errorf("%q: %w", coeffKey, ErrMissingField)
	}

	return blocks, nil
}
