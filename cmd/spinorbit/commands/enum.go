package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchem-go/spinorbit/determinant"
)

var enumFlags struct {
	nmo int
	na  int
	nb  int
}

// EnumCmd prints the full determinant basis for an active space, in
// enumeration (matrix row/column) order.
var EnumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Print the full determinant basis for an active space",
	RunE:  runEnum,
}

func init() {
	f := EnumCmd.Flags()
	f.IntVar(&enumFlags.nmo, "nmo", 0, "number of active orbitals (required)")
	f.IntVar(&enumFlags.na, "na", 0, "alpha electron count")
	f.IntVar(&enumFlags.nb, "nb", 0, "beta electron count")
	_ = EnumCmd.MarkFlagRequired("nmo")
}

func runEnum(cmd *cobra.Command, _ []string) error {
	dets, err := determinant.Enumerate(enumFlags.nmo, enumFlags.na, enumFlags.nb)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "==> List of FCI determinants <==")
	for _, d := range dets {
		fmt.Fprintln(out, d.String(enumFlags.nmo))
	}
	fmt.Fprintf(out, "%d determinants\n", len(dets))

	return nil
}
