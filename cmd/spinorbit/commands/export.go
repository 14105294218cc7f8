package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchem-go/spinorbit/core"
	"github.com/qchem-go/spinorbit/exchange"
	"github.com/qchem-go/spinorbit/spinorb"
)

var exportFlags struct {
	source string
	out    string
	irrep  int
	na     int
	nb     int
	roots  int
}

// ExportCmd expands a flat integral table into the spin-orbital
// exchange format and writes one integral record file.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Expand spatial integrals and write an integral exchange file",
	RunE:  runExport,
}

func init() {
	f := ExportCmd.Flags()
	f.StringVar(&exportFlags.source, "source", "", "flat integral table (JSON, required)")
	f.StringVar(&exportFlags.out, "out", "forte_ints.json", "output exchange file")
	f.IntVar(&exportFlags.irrep, "irrep", 0, "irrep of the target state")
	f.IntVar(&exportFlags.na, "na", 0, "alpha electron count")
	f.IntVar(&exportFlags.nb, "nb", 0, "beta electron count")
	f.IntVar(&exportFlags.roots, "roots", 1, "number of roots")
	_ = ExportCmd.MarkFlagRequired("source")
}

func runExport(_ *cobra.Command, _ []string) error {
	src, err := exchange.LoadSource(exportFlags.source)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	state := core.StateInfo{Irrep: exportFlags.irrep, NA: exportFlags.na, NB: exportFlags.nb}
	weights := core.StateWeights{state: equalWeights(exportFlags.roots)}

	records, err := spinorb.ExportIntegrals(src, weights)
	if err != nil {
		return err
	}

	rec := records[0]
	if err = exchange.WriteIntegralFile(exportFlags.out, rec); err != nil {
		return fmt.Errorf("write %s: %w", exportFlags.out, err)
	}

	log.Infow("integral record written",
		"file", exportFlags.out,
		"nmo", src.NMO(),
		"nso", rec.NSO,
		"oei_entries", len(rec.OEI),
		"tei_entries", len(rec.TEI))

	return nil
}

// equalWeights spreads unit weight evenly over n roots.
func equalWeights(n int) []core.RootWeight {
	if n < 1 {
		n = 1
	}
	out := make([]core.RootWeight, n)
	for i := range out {
		out[i] = core.RootWeight{Root: i, Weight: 1 / float64(n)}
	}

	return out
}
