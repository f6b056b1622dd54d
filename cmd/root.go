// Package cmd is for command line interactions with the plasmid-maker application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "plasmid-maker",
	Short: `Construct plasmid DNA sequences from raw genomic DNA.
Finds an origin of replication, assembles cloning sites and markers,
and scrubs restriction sites that the design does not ask for`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
