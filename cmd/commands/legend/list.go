package legend

import (
	"github.com/LocoDelAssembly/taxonpages/internal/legend"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all legend entries",
		Long:         `List every record category with its display label and background style token.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := legend.All()
			if outputFormat(cmd) == "json" {
				return printJSON(cmd, items)
			}
			printItemsTable(cmd, items)
			return nil
		},
	}

	return cmd
}
