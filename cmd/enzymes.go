package cmd

import (
	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/internal/plasmid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// enzymesCmd is for listing out the enzymes and markers in the markers
// database. Useful for if the user doesn't know which names are available
// in a design file.
var enzymesCmd = &cobra.Command{
	Use:                        "enzymes [name]",
	Short:                      "List enzymes and markers in the markers database",
	Run:                        plasmid.EnzymesCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"markers", "ls"},
	Long: `List the entries of the markers database along with their kind and sequence.

	<Name>: <Kind>: <Sequence>

'plasmid-maker enzymes' without any arguments logs every entry.
With [name], entries with the same or a similar name are logged instead.`,
}

// set flags
func init() {
	enzymesCmd.Flags().StringP("markers", "m", "", "path to the markers database")

	viper.BindPFlag("markers", enzymesCmd.Flags().Lookup("markers"))

	rootCmd.AddCommand(enzymesCmd)
}
