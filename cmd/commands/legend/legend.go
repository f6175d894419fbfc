package legend

import (
	"fmt"
	"os"
	"strconv"

	"github.com/LocoDelAssembly/taxonpages/internal/config"
	"github.com/LocoDelAssembly/taxonpages/internal/util"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether stdin is interactive. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewCommand returns the "legend" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Inspect the distribution map legend",
		Long: "List, look up and render the record categories drawn on the distribution map.\n\n" +
			"Categories: Aggregate, AssertedDistribution, Georeference, CollectionObject, TypeMaterial.",
		PersistentPreRunE: resolveDefaults,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(RenderCommand())
	cmd.AddCommand(ViewCommand())

	cmd.PersistentFlags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

// resolveDefaults fills --output (and --width on commands that have it)
// from the user's config when the flags were not passed explicitly, then
// validates them.
func resolveDefaults(cmd *cobra.Command, args []string) error {
	outputFlag := cmd.Flag("output")
	widthFlag := cmd.Flags().Lookup("width")

	needsConfig := !outputFlag.Changed || (widthFlag != nil && !widthFlag.Changed)
	if needsConfig {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if !outputFlag.Changed && cfg.Output != "" {
			outputFlag.Value.Set(cfg.Output)
			log.Debug().Str("output", cfg.Output).Msg("output format from config")
		}
		if widthFlag != nil && !widthFlag.Changed {
			widthFlag.Value.Set(strconv.Itoa(cfg.RenderWidth()))
			log.Debug().Int("width", cfg.RenderWidth()).Msg("render width from config")
		}
	}

	if err := util.ValidateOutputFormat(util.NormalizeKey(outputFlag.Value.String())); err != nil {
		return err
	}
	if widthFlag != nil {
		width, _ := cmd.Flags().GetInt("width")
		if err := util.ValidateWidth(width); err != nil {
			return err
		}
	}

	return nil
}

func outputFormat(cmd *cobra.Command) string {
	return util.NormalizeKey(cmd.Flag("output").Value.String())
}
