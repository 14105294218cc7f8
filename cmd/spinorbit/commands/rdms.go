package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchem-go/spinorbit/core"
	"github.com/qchem-go/spinorbit/exchange"
	"github.com/qchem-go/spinorbit/spinorb"
)

var rdmsFlags struct {
	rdms    string
	out     string
	energy  float64
	maxRank int
	irrep   int
	na      int
	nb      int
}

// RDMsCmd expands a flat density-matrix table into the spin-orbital
// exchange format and writes one RDM record file.
var RDMsCmd = &cobra.Command{
	Use:   "rdms",
	Short: "Expand density matrices and write an RDM exchange file",
	RunE:  runRDMs,
}

func init() {
	f := RDMsCmd.Flags()
	f.StringVar(&rdmsFlags.rdms, "rdms", "", "flat density-matrix table (JSON, required)")
	f.StringVar(&rdmsFlags.out, "out", "rdms.json", "output exchange file")
	f.Float64Var(&rdmsFlags.energy, "energy", 0, "reference energy of the state")
	f.IntVar(&rdmsFlags.maxRank, "max-rank", 2, "highest RDM rank to export (1-3)")
	f.IntVar(&rdmsFlags.irrep, "irrep", 0, "irrep of the target state")
	f.IntVar(&rdmsFlags.na, "na", 0, "alpha electron count")
	f.IntVar(&rdmsFlags.nb, "nb", 0, "beta electron count")
	_ = RDMsCmd.MarkFlagRequired("rdms")
}

func runRDMs(_ *cobra.Command, _ []string) error {
	bundle, err := exchange.LoadRDMs(rdmsFlags.rdms)
	if err != nil {
		return fmt.Errorf("load rdms: %w", err)
	}

	state := core.StateInfo{Irrep: rdmsFlags.irrep, NA: rdmsFlags.na, NB: rdmsFlags.nb}
	solver := &core.StaticSolver{
		Bundle:   bundle,
		Energies: map[core.StateInfo][]float64{state: {rdmsFlags.energy}},
	}
	weights := core.StateWeights{state: {{Root: 0, Weight: 1}}}

	rec, err := spinorb.ExportRDMs(solver, weights, rdmsFlags.maxRank)
	if err != nil {
		return err
	}
	if err = exchange.WriteRDMFile(rdmsFlags.out, rec); err != nil {
		return fmt.Errorf("write %s: %w", rdmsFlags.out, err)
	}

	log.Infow("RDM record written",
		"file", rdmsFlags.out,
		"max_rank", rdmsFlags.maxRank,
		"gamma1_entries", len(rec.Gamma1),
		"gamma2_entries", len(rec.Gamma2),
		"gamma3_entries", len(rec.Gamma3))

	return nil
}
