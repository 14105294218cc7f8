// SPDX-License-Identifier: MIT

package exchange

import (
	"encoding/json"
	"os"

	"github.com/qchem-go/spinorbit/core"
)

// LoadSource decodes a flat integral table (the JSON form of
// core.DenseSource) and validates its dimensions. This is how the
// command-line tool obtains an integral provider; tests use it to load
// hand-written fixtures. Errors: core.ErrDataInconsistent from
// Validate; I/O and JSON errors unmodified.
func LoadSource(path string) (*core.DenseSource, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var src core.DenseSource
	if err = json.Unmarshal(buf, &src); err != nil {
		return nil, err
	}
	if err = src.Validate(); err != nil {
		return nil, err
	}

	return &src, nil
}

// LoadRDMs decodes a flat density-matrix table (the JSON form of
// core.DenseRDMs) and validates it against its declared rank.
func LoadRDMs(path string) (*core.DenseRDMs, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rdms core.DenseRDMs
	if err = json.Unmarshal(buf, &rdms); err != nil {
		return nil, err
	}
	if err = rdms.Validate(); err != nil {
		return nil, err
	}

	return &rdms, nil
}
