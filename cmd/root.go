package cmd

import (
	"os"

	cfgcmd "github.com/LocoDelAssembly/taxonpages/cmd/commands/config"
	"github.com/LocoDelAssembly/taxonpages/cmd/commands/legend"
	"github.com/LocoDelAssembly/taxonpages/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var verbose bool

	var cmd = &cobra.Command{
		Use:   "taxonpages",
		Short: "Inspect and render the TaxonPages distribution map legend",
		Long: `taxonpages exposes the legend used by the TaxonPages distribution map:
the record categories drawn on the map, their display labels and the
style token each one is painted with.

Quick start:
  taxonpages legend list                 # All legend entries
  taxonpages legend show Georeference    # A single entry
  taxonpages legend render otu.geojson   # Legend for a dataset
  taxonpages legend view                 # Interactive legend browser`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(legend.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.EnableTraverseRunHooks = true

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
