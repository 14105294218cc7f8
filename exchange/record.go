// SPDX-License-Identifier: MIT

package exchange

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/qchem-go/spinorbit/spinorb"
)

// Field is one exported record field: a JSON-serializable payload plus
// its human-readable description. Both halves are part of the contract.
type Field struct {
	Data        any    `json:"data"`
	Description string `json:"description"`
}

// Contractual field names of the integral exchange record.
const (
	KeyStateSymmetry = "state_symmetry"
	KeyNA            = "na"
	KeyNB            = "nb"
	KeyNSO           = "nso"
	KeySymmetry      = "symmetry"
	KeySpin          = "spin"
	KeyScalarEnergy  = "scalar_energy"
	KeyOEI           = "oei"
	KeyTEI           = "tei"
)

// Contractual field names of the RDM exchange record.
const (
	KeyEnergy = "energy"
	KeyGamma1 = "gamma1"
	KeyGamma2 = "gamma2"
	KeyGamma3 = "gamma3"
)

// Field description strings, kept verbatim from the established
// interchange format (downstream readers display them as-is).
const (
	descStateSymmetry = "Symmetry of the state"
	descNA            = "number of alpha electrons"
	descNB            = "number of beta electrons"
	descNSO           = "number of spin orbitals"
	descSymmetry      = "symmetry of each spin orbital (Cotton ordering)"
	descSpin          = "spin of each spin orbital (0 = alpha, 1 = beta)"
	descScalarEnergy  = "scalar energy (sum of nuclear repulsion, frozen core, and scalar contributions"
	descOEI           = "one-electron integrals as a list of tuples (i,j,<i|h|j>)"
	descTEI           = "antisymmetrized two-electron integrals as a list of tuples (i,j,k,l,<ij||kl>)"
	descEnergy        = "energy"
	descGamma1        = "one-body density matrix as a list of tuples (i,j,<i^ j>)"
	descGamma2        = "two-body density matrix as a list of tuples (i,j,k,l,<i^ j^ l k>)"
	descGamma3        = "three-body density matrix as a list of tuples (i,j,k,l,m,n <i^ j^ k^ n m l>)"
)

// tuples3 encodes one-body entries as JSON tuples [i, j, v].
func tuples3(entries []spinorb.OneBodyEntry) [][]any {
	out := make([][]any, len(entries))
	for n, e := range entries {
		out[n] = []any{e.I, e.J, e.V}
	}

	return out
}

// tuples5 encodes two-body entries as JSON tuples [i, j, k, l, v].
func tuples5(entries []spinorb.TwoBodyEntry) [][]any {
	out := make([][]any, len(entries))
	for n, e := range entries {
		out[n] = []any{e.I, e.J, e.K, e.L, e.V}
	}

	return out
}

// tuples7 encodes three-body entries as JSON tuples [i,j,k,l,m,n,v].
func tuples7(entries []spinorb.ThreeBodyEntry) [][]any {
	out := make([][]any, len(entries))
	for n, e := range entries {
		out[n] = []any{e.I, e.J, e.K, e.L, e.M, e.N, e.V}
	}

	return out
}

// EncodeIntegralRecord maps an integral record onto its contractual
// field names with descriptions attached.
func EncodeIntegralRecord(rec spinorb.IntegralRecord) map[string]Field {
	return map[string]Field{
		KeyStateSymmetry: {rec.State.Irrep, descStateSymmetry},
		KeyNA:            {rec.State.NA, descNA},
		KeyNB:            {rec.State.NB, descNB},
		KeyNSO:           {rec.NSO, descNSO},
		KeySymmetry:      {rec.Symmetry, descSymmetry},
		KeySpin:          {rec.Spin, descSpin},
		KeyScalarEnergy:  {rec.ScalarEnergy, descScalarEnergy},
		KeyOEI:           {tuples3(rec.OEI), descOEI},
		KeyTEI:           {tuples5(rec.TEI), descTEI},
	}
}

// EncodeRDMRecord maps an RDM record onto its contractual field names.
// The gamma3 field is present only when the record carries rank 3.
func EncodeRDMRecord(rec *spinorb.RDMRecord) map[string]Field {
	m := map[string]Field{
		KeyEnergy: {rec.Energy, descEnergy},
		KeyGamma1: {tuples3(rec.Gamma1), descGamma1},
		KeyGamma2: {tuples5(rec.Gamma2), descGamma2},
	}
	if rec.Gamma3 != nil {
		m[KeyGamma3] = Field{tuples7(rec.Gamma3), descGamma3}
	}

	return m
}

// marshalRecord renders any field map as the canonical on-disk form:
// sorted keys (Go maps marshal key-sorted), two-space indent, trailing
// newline. Byte-identical for identical records.
func marshalRecord(m map[string]Field) ([]byte, error) {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(buf, '\n'), nil
}

// WriteIntegralFile encodes rec and writes it to path in one shot.
// The record is fully built in memory first; no partial file is ever
// produced on error.
func WriteIntegralFile(path string, rec spinorb.IntegralRecord) error {
	buf, err := marshalRecord(EncodeIntegralRecord(rec))
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0o644)
}

// WriteRDMFile encodes rec and writes it to path in one shot.
func WriteRDMFile(path string, rec *spinorb.RDMRecord) error {
	buf, err := marshalRecord(EncodeRDMRecord(rec))
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0o644)
}

// rawField mirrors Field with a deferred payload for decoding.
type rawField struct {
	Data        json.RawMessage `json:"data"`
	Description string          `json:"description"`
}

// ReadIntegralFile decodes an integral exchange file back into a
// record. Index positions must be integral; tuple arity must match the
// field. Errors: ErrMissingField, ErrBadTuple, or the underlying I/O or
// JSON error unmodified.
func ReadIntegralFile(path string) (*spinorb.IntegralRecord, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields map[string]rawField
	if err = json.Unmarshal(buf, &fields); err != nil {
		return nil, err
	}

	rec := &spinorb.IntegralRecord{}
	if err = decodeField(fields, KeyStateSymmetry, &rec.State.Irrep); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeyNA, &rec.State.NA); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeyNB, &rec.State.NB); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeyNSO, &rec.NSO); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeySymmetry, &rec.Symmetry); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeySpin, &rec.Spin); err != nil {
		return nil, err
	}
	if err = decodeField(fields, KeyScalarEnergy, &rec.ScalarEnergy); err != nil {
		return nil, err
	}

	var oei [][]float64
	if err = decodeField(fields, KeyOEI, &oei); err != nil {
		return nil, err
	}
	if rec.OEI, err = decodeOneBody(oei); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyOEI, err)
	}

	var tei [][]float64
	if err = decodeField(fields, KeyTEI, &tei); err != nil {
		return nil, err
	}
	if rec.TEI, err = decodeTwoBody(tei); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyTEI, err)
	}

	return rec, nil
}

// decodeField unmarshals the data payload of one named field into dst.
func decodeField(fields map[string]rawField, key string, dst any) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrMissingField)
	}

	return json.Unmarshal(f.Data, dst)
}

// index converts a decoded tuple position to an integer index,
// rejecting fractional values.
func index(v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("index %v: %w", v, ErrBadTuple)
	}

	return int(v), nil
}

func decodeOneBody(tuples [][]float64) ([]spinorb.OneBodyEntry, error) {
	out := make([]spinorb.OneBodyEntry, len(tuples))
	for n, t := range tuples {
		if len(t) != 3 {
			return nil, fmt.Errorf("tuple %d has arity %d: %w", n, len(t), ErrBadTuple)
		}
		i, err := index(t[0])
		if err != nil {
			return nil, err
		}
		j, err := index(t[1])
		if err != nil {
			return nil, err
		}
		out[n] = spinorb.OneBodyEntry{I: i, J: j, V: t[2]}
	}

	return out, nil
}

func decodeTwoBody(tuples [][]float64) ([]spinorb.TwoBodyEntry, error) {
	out := make([]spinorb.TwoBodyEntry, len(tuples))
	for n, t := range tuples {
		if len(t) != 5 {
			return nil, fmt.Errorf("tuple %d has arity %d: %w", n, len(t), ErrBadTuple)
		}
		idx := [4]int{}
		for p := 0; p < 4; p++ {
			v, err := index(t[p])
			if err != nil {
				return nil, err
			}
			idx[p] = v
		}
		out[n] = spinorb.TwoBodyEntry{I: idx[0], J: idx[1], K: idx[2], L: idx[3], V: t[4]}
	}

	return out, nil
}
