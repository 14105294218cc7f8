// SPDX-License-Identifier: MIT

package spinorb

import (
	"fmt"

	"github.com/qchem-go/spinorbit/core"
)

// IntegralRecord is the exchange unit for one electronic state: the
// spin-orbital metadata and the fully expanded one- and two-electron
// integrals. Records are plain values produced by ExportIntegrals; they
// have no persistent identity — the exchange package handles encoding
// and writing, keyed by an explicit output path.
type IntegralRecord struct {
	// State identifies the electronic state the record targets.
	State core.StateInfo
	// NRoots is the number of roots requested for the state.
	NRoots int
	// NSO is the spin-orbital count; always 2·nmo.
	NSO int
	// Symmetry holds the irrep of each spin orbital (length NSO: each
	// spatial label appears twice, alpha then beta).
	Symmetry []int
	// Spin holds the spin of each spin orbital (length NSO, 0=alpha 1=beta).
	Spin []int
	// ScalarEnergy is the sum of nuclear repulsion, frozen core, and
	// scalar Hamiltonian contributions.
	ScalarEnergy float64
	// OEI is the expanded one-electron integral list.
	OEI []OneBodyEntry
	// TEI is the expanded antisymmetrized two-electron integral list.
	TEI []TwoBodyEntry
}

// RDMRecord is the exchange unit for the state-averaged density
// matrices of a whole calculation (one record, not one per state).
type RDMRecord struct {
	// Energy is the reference energy attached to the record (root 0 of
	// the last state in deterministic order).
	Energy float64
	// MaxRank is the highest rank present.
	MaxRank int
	// Gamma1 is the expanded one-body density matrix.
	Gamma1 []OneBodyEntry
	// Gamma2 is the expanded two-body density matrix.
	Gamma2 []TwoBodyEntry
	// Gamma3 is the expanded three-body density matrix; nil unless
	// MaxRank == 3.
	Gamma3 []ThreeBodyEntry
}

// ExportIntegrals builds one IntegralRecord per state in weights, in
// core.SortedStates order.
//
// The expansion is computed once and shared across records (the
// integrals do not depend on the state; records treat the slices as
// read-only). The function is pure: it never touches the filesystem and
// never mutates src.
//
// Errors:
//   - core.ErrNilSource       — nil source.
//   - core.ErrDataInconsistent — src reports a symmetry vector whose
//     length disagrees with NMO.
func ExportIntegrals(src core.IntegralSource, weights core.StateWeights) ([]IntegralRecord, error) {
	if src == nil {
		return nil, fmt.Errorf("ExportIntegrals: %w", core.ErrNilSource)
	}

	nmo := src.NMO()
	mosym := src.MOSymmetry()
	if len(mosym) != nmo {
		return nil, fmt.Errorf("ExportIntegrals: symmetry length %d, nmo %d: %w",
			len(mosym), nmo, core.ErrDataInconsistent)
	}

	nso := 2 * nmo
	symmetry := make([]int, 0, nso)
	spin := make([]int, 0, nso)
	for i := 0; i < nmo; i++ {
		symmetry = append(symmetry, mosym[i], mosym[i])
		spin = append(spin, int(core.Alpha), int(core.Beta))
	}

	scalar := src.FrozenCoreEnergy() + src.ScalarEnergy() + src.NuclearRepulsionEnergy()
	oei := expandPairs(nmo, src.OEIA, src.OEIB)
	tei := expandQuads(nmo, src.TEIAA, src.TEIAB, src.TEIBB)

	records := make([]IntegralRecord, 0, len(weights))
	for _, state := range core.SortedStates(weights) {
		records = append(records, IntegralRecord{
			State:        state,
			NRoots:       len(weights[state]),
			NSO:          nso,
			Symmetry:     symmetry,
			Spin:         spin,
			ScalarEnergy: scalar,
			OEI:          oei,
			TEI:          tei,
		})
	}

	return records, nil
}

// ExportRDMs obtains the state-averaged density matrices from the
// solver and expands them into a single RDMRecord. Gamma3 is populated
// only when maxRank is 3; requesting rank 3 from a solver that computed
// less fails with core.ErrUnsupportedRank (propagated from the solver).
//
// The record's Energy is the first-root energy of the last state in
// core.SortedStates order over the solver's energy map.
//
// Errors: core.ErrNilSource on a nil solver; solver errors propagate
// unmodified.
func ExportRDMs(solver core.Solver, weights core.StateWeights, maxRank int) (*RDMRecord, error) {
	if solver == nil {
		return nil, fmt.Errorf("ExportRDMs: %w", core.ErrNilSource)
	}

	rdms, err := solver.ComputeAverageRDMs(weights, maxRank)
	if err != nil {
		return nil, err
	}

	rec := &RDMRecord{MaxRank: maxRank}

	for _, state := range core.SortedStates(solver.StateEnergies()) {
		if energies := solver.StateEnergies()[state]; len(energies) > 0 {
			rec.Energy = energies[0]
		}
	}

	if rec.Gamma1, err = ExpandGamma1(rdms); err != nil {
		return nil, err
	}
	if maxRank >= 2 {
		if rec.Gamma2, err = ExpandGamma2(rdms); err != nil {
			return nil, err
		}
	}
	if maxRank >= 3 {
		if rec.Gamma3, err = ExpandGamma3(rdms); err != nil {
			return nil, err
		}
	}

	return rec, nil
}
