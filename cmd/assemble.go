package cmd

import (
	"github.com/jjtimmons/stitch/internal/assemble"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is for merging a FASTA file of fragments into their sequence
var assembleCmd = &cobra.Command{
	Use:                        "assemble [FASTA]",
	Short:                      "Assemble a sequence from its overlapping fragments",
	RunE:                       assemble.SequenceCmd,
	SuggestionsMinimumDistance: 3,
	Args:                       cobra.MaximumNArgs(1),
	Long: `Assemble a sequence from a FASTA file of overlapping fragments.

Each fragment must overlap its neighbors by more than half of its length,
and the overlaps must describe exactly one ordering of the fragments. The
fragments are:

1. Screened for possible neighbors (either half of a fragment found in another)
2. Confirmed as neighbors by an exact overlap that runs to both fragments' ends
3. Ordered into a single chain that uses every fragment once
4. Merged, with each overlap trimmed`,
	Aliases: []string{"merge"},
}

// overlapsCmd is for listing the confirmed overlaps without assembling
var overlapsCmd = &cobra.Command{
	Use:                        "overlaps [FASTA]",
	Short:                      "List the confirmed overlaps between fragments",
	RunE:                       assemble.OverlapsCmd,
	SuggestionsMinimumDistance: 3,
	Args:                       cobra.MaximumNArgs(1),
}

// set flags
func init() {
	for _, c := range []*cobra.Command{assembleCmd, overlapsCmd} {
		// Flags for specifying the paths to the input file and output file
		c.Flags().StringP("in", "i", "", "input FASTA file of fragments")
		c.Flags().StringP("out", "o", "", "output file name (default stdout)")
	}

	assembleCmd.Flags().StringP("format", "f", "fasta", "output format: fasta, json or yaml")
	assembleCmd.Flags().IntP("line-width", "l", 0, "symbols per line of FASTA output (0 for one line)")
	assembleCmd.Flags().StringP("name", "n", "assembly", "name of the assembled record")

	viper.BindPFlag("format", assembleCmd.Flags().Lookup("format"))
	viper.BindPFlag("line-width", assembleCmd.Flags().Lookup("line-width"))
	viper.BindPFlag("name", assembleCmd.Flags().Lookup("name"))

	RootCmd.AddCommand(assembleCmd)
	RootCmd.AddCommand(overlapsCmd)
}
