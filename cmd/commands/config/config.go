package config

import (
	"github.com/LocoDelAssembly/taxonpages/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taxonpages configuration",
		Long: "View and modify persistent taxonpages settings.\n\n" +
			"Configuration is stored at ~/.config/taxonpages/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
