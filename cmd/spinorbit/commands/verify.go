package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/qchem-go/spinorbit/exchange"
)

// verifyTol is the tolerance for the antisymmetry pairing checks; rows
// come from the same float, so only sign arithmetic can differ.
const verifyTol = 1e-12

var verifyFlags struct {
	file string
}

// VerifyCmd re-reads a written integral exchange file and checks the
// structural invariants of the format: spin-orbital dimensions, the
// absence of cross-spin one-electron entries, and the antisymmetry sign
// pairings among the mixed-spin two-electron rows.
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check an integral exchange file against its invariants",
	RunE:  runVerify,
}

func init() {
	VerifyCmd.Flags().StringVar(&verifyFlags.file, "file", "", "integral exchange file (required)")
	_ = VerifyCmd.MarkFlagRequired("file")
}

func runVerify(_ *cobra.Command, _ []string) error {
	rec, err := exchange.ReadIntegralFile(verifyFlags.file)
	if err != nil {
		return fmt.Errorf("read %s: %w", verifyFlags.file, err)
	}

	if rec.NSO <= 0 || rec.NSO%2 != 0 {
		return fmt.Errorf("nso=%d is not twice an orbital count", rec.NSO)
	}
	if len(rec.Symmetry) != rec.NSO {
		return fmt.Errorf("symmetry length %d, want nso=%d", len(rec.Symmetry), rec.NSO)
	}
	if len(rec.Spin) != rec.NSO {
		return fmt.Errorf("spin length %d, want nso=%d", len(rec.Spin), rec.NSO)
	}
	for p := 0; p < rec.NSO; p++ {
		if rec.Spin[p] != p%2 {
			return fmt.Errorf("spin[%d]=%d, want %d", p, rec.Spin[p], p%2)
		}
	}
	for i := 0; i+1 < rec.NSO; i += 2 {
		if rec.Symmetry[i] != rec.Symmetry[i+1] {
			return fmt.Errorf("symmetry[%d]=%d and symmetry[%d]=%d differ within one spatial orbital",
				i, rec.Symmetry[i], i+1, rec.Symmetry[i+1])
		}
	}

	// One-electron entries must never cross spin channels.
	for _, e := range rec.OEI {
		if e.I%2 != e.J%2 {
			return fmt.Errorf("oei entry (%d,%d) crosses spin channels", e.I, e.J)
		}
	}

	// Mixed-spin two-electron rows must pair with their sign partners:
	// swapping within the first index pair (abab vs baab) or the last
	// (abab vs abba) negates the value.
	tei := make(map[[4]int]float64, len(rec.TEI))
	for _, e := range rec.TEI {
		tei[[4]int{e.I, e.J, e.K, e.L}] = e.V
	}
	for _, e := range rec.TEI {
		if e.I%2 != 0 || e.J%2 != 1 || e.K%2 != 0 || e.L%2 != 1 {
			continue // only abab rows anchor the pairing check
		}
		abba, ok := tei[[4]int{e.I, e.J, e.L, e.K}]
		if !ok || math.Abs(abba+e.V) > verifyTol {
			return fmt.Errorf("abba partner of (%d,%d,%d,%d) missing or not negated", e.I, e.J, e.K, e.L)
		}
		baab, ok := tei[[4]int{e.J, e.I, e.K, e.L}]
		if !ok || math.Abs(baab+e.V) > verifyTol {
			return fmt.Errorf("baab partner of (%d,%d,%d,%d) missing or not negated", e.I, e.J, e.K, e.L)
		}
	}

	log.Infow("exchange file verified",
		"file", verifyFlags.file,
		"nso", rec.NSO,
		"oei_entries", len(rec.OEI),
		"tei_entries", len(rec.TEI))

	return nil
}
