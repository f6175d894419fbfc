package legend

import (
	"fmt"

	"github.com/LocoDelAssembly/taxonpages/internal/dataset"
	"github.com/LocoDelAssembly/taxonpages/internal/tui"

	"github.com/spf13/cobra"
)

// ViewCommand returns the "legend view" command.
func ViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the legend interactively",
		Long: "Open an interactive legend browser. With a GeoJSON file, only the\n" +
			"categories present in it are listed, with their feature counts.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runView,
		SilenceUsage: true,
	}

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("legend view requires an interactive terminal; use 'taxonpages legend list' instead")
	}

	var summary *dataset.Summary
	if len(args) == 1 {
		s, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		summary = s
	}

	if err := tui.RunLegendView(summary); err != nil {
		return fmt.Errorf("legend view failed: %w", err)
	}
	return nil
}
