package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qchem-go/spinorbit/cmd/spinorbit/commands"
)

var rootCmd = &cobra.Command{
	Use:   "spinorbit",
	Short: "spinorbit - active-space spin-orbital exchange toolkit",
	Long: `spinorbit - export active-space integrals and density matrices to the
spin-orbital JSON exchange format, and validate them by brute-force
determinant enumeration.

Available commands:
  export - Expand spatial integrals and write an integral exchange file
  rdms   - Expand density matrices and write an RDM exchange file
  enum   - Print the full determinant basis for an active space
  verify - Check an integral exchange file against its invariants

Examples:
  spinorbit export --source ints.json --na 1 --nb 1 --out forte_ints.json
  spinorbit rdms --rdms rdms_in.json --energy -1.1372 --out rdms.json
  spinorbit enum --nmo 4 --na 2 --nb 2
  spinorbit verify --file forte_ints.json`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := commands.Initialize(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")

	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.RDMsCmd)
	rootCmd.AddCommand(commands.EnumCmd)
	rootCmd.AddCommand(commands.VerifyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
