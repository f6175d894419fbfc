package legend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"
	"github.com/LocoDelAssembly/taxonpages/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ShowCommand returns the "legend show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [category]",
		Short: "Show a single legend entry",
		Long: "Show the label and background style token for one record category.\n\n" +
			"Category names are matched case-insensitively. If no category is given\n" +
			"and running in a terminal, an interactive picker is shown.\n\n" +
			"Examples:\n" +
			"  taxonpages legend show Georeference\n" +
			"  taxonpages legend show typematerial -o json",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	var c legend.Category

	if len(args) == 0 {
		if !isTerminal() {
			return fmt.Errorf("no category specified (valid: %s)", strings.Join(legend.Names(), ", "))
		}

		selected, err := tui.SelectCategory()
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Selection cancelled.")
				return nil
			}
			return err
		}
		c = selected
	} else {
		parsed, err := legend.ParseCategory(args[0])
		if err != nil {
			return fmt.Errorf("%w (valid: %s)", err, strings.Join(legend.Names(), ", "))
		}
		c = parsed
	}

	e, err := legend.Get(c)
	if err != nil {
		return err
	}
	log.Debug().Str("category", string(c)).Msg("legend entry resolved")

	item := legend.Item{Category: c, Entry: e}
	if outputFormat(cmd) == "json" {
		return printJSON(cmd, item)
	}
	printItemDetail(cmd, item)
	return nil
}
