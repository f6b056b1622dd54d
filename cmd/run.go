package cmd

import (
	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/internal/plasmid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd is for the one-shot pipeline: genomic FASTA + design file in,
// plasmid FASTA out.
var runCmd = &cobra.Command{
	Use:   "run [input.fa] [design.txt] [output.fa] [markers.tab]",
	Short: "Build a plasmid from genomic DNA and a design file",
	Run:   plasmid.RunCmd,
	Args:  cobra.RangeArgs(3, 4),
	Long: `Build a complete plasmid sequence from a genomic DNA FASTA file and a
design file listing cloning sites and selectable markers.

The pipeline:
1. Locates an origin of replication in the genomic sequence (DnaA boxes,
   falling back to AT-rich windows, falling back to the sequence start)
2. Assembles the plasmid: ORI, replication elements, the multiple cloning
   site, then markers, with short spacers between segments
3. Mutates away every restriction site whose enzyme the design does not
   keep, so only the requested cloning sites remain cuttable

Recoverable problems (a marker missing from the database, a site that
could not be confirmed destroyed) are reported as warnings and never stop
the run. The output file is only written on success.`,
	Example: "  plasmid-maker run genome.fa design.txt plasmid.fa data/markers.tab",
}

// set flags
func init() {
	runCmd.Flags().StringP("settings", "s", "", "path to a YAML settings file")

	viper.BindPFlag("settings", runCmd.Flags().Lookup("settings"))

	rootCmd.AddCommand(runCmd)
}
