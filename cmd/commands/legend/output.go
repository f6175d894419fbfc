package legend

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"

	"github.com/spf13/cobra"
)

// renderedEntry is the JSON shape of a legend line for a dataset.
type renderedEntry struct {
	Key        legend.Category `json:"key"`
	Label      string          `json:"label"`
	Background string          `json:"background"`
	Count      *int            `json:"count,omitempty"`
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printItemsTable prints legend items as an aligned KEY/LABEL/BACKGROUND table.
func printItemsTable(cmd *cobra.Command, items []legend.Item) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tBACKGROUND")
	fmt.Fprintln(w, "---\t-----\t----------")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Category, item.Label, item.Background)
	}
	w.Flush()
}

// printItemDetail prints a vertical key-value table for one entry.
func printItemDetail(cmd *cobra.Command, item legend.Item) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Key:\t%s\n", item.Category)
	fmt.Fprintf(w, "  Label:\t%s\n", item.Label)
	fmt.Fprintf(w, "  Background:\t%s\n", item.Background)
	w.Flush()
}
