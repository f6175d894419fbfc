package legend

import (
	"fmt"

	"github.com/LocoDelAssembly/taxonpages/internal/config"
	"github.com/LocoDelAssembly/taxonpages/internal/dataset"
	"github.com/LocoDelAssembly/taxonpages/internal/legend"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/components"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RenderCommand returns the "legend render" command.
func RenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the legend for a map dataset",
		Long: "Render the legend swatches for the record categories present in a\n" +
			"GeoJSON FeatureCollection. Each feature names its category in\n" +
			"properties.type. Use - to read from stdin. Without a file, the full\n" +
			"legend is rendered.\n\n" +
			"Examples:\n" +
			"  taxonpages legend render otu.geojson --counts\n" +
			"  cat otu.geojson | taxonpages legend render - -o json",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runRender,
		SilenceUsage: true,
	}

	cmd.Flags().Int("width", config.DefaultWidth, "Legend width in columns")
	cmd.Flags().Bool("counts", false, "Show the number of features per category")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	showCounts, _ := cmd.Flags().GetBool("counts")

	var summary *dataset.Summary
	categories := legend.Categories()
	if len(args) == 1 {
		s, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		summary = s
		categories = s.Present()
		log.Debug().
			Str("file", args[0]).
			Int("features", s.Total()).
			Int("categories", len(categories)).
			Msg("dataset loaded")
	}

	var counts func(legend.Category) int
	if showCounts {
		counts = summary.Count
	}

	if outputFormat(cmd) == "json" {
		entries := make([]renderedEntry, 0, len(categories))
		for _, c := range categories {
			e, err := legend.Get(c)
			if err != nil {
				return err
			}
			entry := renderedEntry{Key: c, Label: e.Label, Background: e.Background}
			if counts != nil {
				n := counts(c)
				entry.Count = &n
			}
			entries = append(entries, entry)
		}
		return printJSON(cmd, entries)
	}

	if len(categories) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mapped records.")
		return nil
	}

	rows, err := components.LegendRowsFor(categories, counts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), components.Legend(width, rows))
	return nil
}
